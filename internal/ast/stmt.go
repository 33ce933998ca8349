// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package ast

import (
	"strings"
)

type StmtKind int

const (
	KindVarDecl StmtKind = iota
	KindEnsureSuccess
	KindScope
	KindReturn
)

type Stmt interface {
	Kind() StmtKind
	String() string
	stmtNode()
}

type VarDecl struct {
	Name  string
	Value Expr
}

// EnsureSuccess — проверка успешного статуса ответа до любого декодирования.
type EnsureSuccess struct {
	Response Expr
}

// Scope — ресурс с гарантированным освобождением на всех путях выхода из Body.
type Scope struct {
	Name     string
	Resource Expr
	Body     []Stmt
}

// Return без значения — возврат из void-функции.
type Return struct {
	Value Expr
}

func (*VarDecl) Kind() StmtKind       { return KindVarDecl }
func (*EnsureSuccess) Kind() StmtKind { return KindEnsureSuccess }
func (*Scope) Kind() StmtKind         { return KindScope }
func (*Return) Kind() StmtKind        { return KindReturn }

func (*VarDecl) stmtNode()       {}
func (*EnsureSuccess) stmtNode() {}
func (*Scope) stmtNode()         {}
func (*Return) stmtNode()        {}

func (s *VarDecl) String() string { return "var " + s.Name + " = " + s.Value.String() + ";" }

func (s *EnsureSuccess) String() string { return s.Response.String() + ".EnsureSuccessStatusCode();" }

func (s *Scope) String() string {

	var buf strings.Builder
	buf.WriteString("using (var " + s.Name + " = " + s.Resource.String() + ") {")
	for _, stmt := range s.Body {
		buf.WriteString(" ")
		buf.WriteString(stmt.String())
	}
	buf.WriteString(" }")
	return buf.String()
}

func (s *Return) String() string {

	if s.Value == nil {
		return "return;"
	}
	return "return " + s.Value.String() + ";"
}

// Walk обходит операторы в глубину, включая вложенные Scope.
func Walk(stmts []Stmt, fn func(Stmt) bool) {

	for _, stmt := range stmts {
		if !fn(stmt) {
			return
		}
		if scope, ok := stmt.(*Scope); ok {
			Walk(scope.Body, fn)
		}
	}
}

// WalkExpr обходит выражение и все вложенные в него выражения.
func WalkExpr(expr Expr, fn func(Expr)) {

	if expr == nil {
		return
	}
	fn(expr)
	switch e := expr.(type) {
	case *Concat:
		for _, part := range e.Parts {
			WalkExpr(part, fn)
		}
	case *Escape:
		WalkExpr(e.Value, fn)
	case *NewURI:
		WalkExpr(e.Path, fn)
	case *Wait:
		WalkExpr(e.X, fn)
	case *Await:
		WalkExpr(e.X, fn)
	case *Send:
		WalkExpr(e.URI, fn)
		WalkExpr(e.Payload, fn)
	case *Serialize:
		WalkExpr(e.Value, fn)
	case *ReadStream:
		WalkExpr(e.Response, fn)
	case *TextReader:
		WalkExpr(e.Stream, fn)
	case *ReadToEnd:
		WalkExpr(e.Reader, fn)
	case *JSONReader:
		WalkExpr(e.Stream, fn)
	case *ReadJSONString:
		WalkExpr(e.Reader, fn)
	case *Deserialize:
		WalkExpr(e.Reader, fn)
	case *ParsePrimitive:
		WalkExpr(e.Text, fn)
	}
}

// StmtExprs возвращает выражения верхнего уровня оператора.
func StmtExprs(stmt Stmt) []Expr {

	switch s := stmt.(type) {
	case *VarDecl:
		return []Expr{s.Value}
	case *EnsureSuccess:
		return []Expr{s.Response}
	case *Scope:
		return []Expr{s.Resource}
	case *Return:
		if s.Value != nil {
			return []Expr{s.Value}
		}
	}
	return nil
}
