// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package ast

import (
	"strings"
)

type Param struct {
	Name string
	Type *TypeRef
}

// Function — сгенерированная клиентская функция. После сборки не изменяется.
type Function struct {
	Name      string
	Operation string
	Method    string
	Route     string
	Params    []Param
	Returns   *TypeRef
	Docs      []string
	Body      []Stmt
}

func (f *Function) IsAsync() bool {

	return f.Returns.IsFuture()
}

func (f *Function) String() string {

	var buf strings.Builder
	for _, doc := range f.Docs {
		buf.WriteString("/// " + doc + "\n")
	}
	params := make([]string, 0, len(f.Params))
	for _, param := range f.Params {
		params = append(params, param.Type.String()+" "+param.Name)
	}
	buf.WriteString(f.Returns.String() + " " + f.Name + "(" + strings.Join(params, ", ") + ") {\n")
	for _, stmt := range f.Body {
		buf.WriteString("    " + stmt.String() + "\n")
	}
	buf.WriteString("}")
	return buf.String()
}

// Builder собирает Function; каждый экземпляр используется для одной операции.
type Builder struct {
	fn    *Function
	stack [][]Stmt
}

func NewBuilder(name string) *Builder {

	return &Builder{
		fn:    &Function{Name: name, Returns: Void()},
		stack: [][]Stmt{nil},
	}
}

func (b *Builder) Operation(name string) *Builder {

	b.fn.Operation = name
	return b
}

// Endpoint запоминает HTTP-метод и маршрут операции.
func (b *Builder) Endpoint(method, route string) *Builder {

	b.fn.Method = method
	b.fn.Route = route
	return b
}

func (b *Builder) Returns(t *TypeRef) *Builder {

	if t == nil {
		t = Void()
	}
	b.fn.Returns = t
	return b
}

func (b *Builder) Doc(lines ...string) *Builder {

	b.fn.Docs = append(b.fn.Docs, lines...)
	return b
}

func (b *Builder) Param(name string, t *TypeRef) *Builder {

	b.fn.Params = append(b.fn.Params, Param{Name: name, Type: t})
	return b
}

func (b *Builder) Add(stmts ...Stmt) *Builder {

	top := len(b.stack) - 1
	b.stack[top] = append(b.stack[top], stmts...)
	return b
}

// Open начинает Scope: последующие операторы попадают в его тело до Close.
func (b *Builder) Open(name string, resource Expr) *Builder {

	b.Add(&Scope{Name: name, Resource: resource})
	b.stack = append(b.stack, nil)
	return b
}

func (b *Builder) Close() *Builder {

	top := len(b.stack) - 1
	if top == 0 {
		return b
	}
	body := b.stack[top]
	b.stack = b.stack[:top]
	parent := b.stack[top-1]
	parent[len(parent)-1].(*Scope).Body = body
	return b
}

// Build закрывает незакрытые Scope и возвращает функцию.
func (b *Builder) Build() *Function {

	for len(b.stack) > 1 {
		b.Close()
	}
	b.fn.Body = b.stack[0]
	return b.fn
}
