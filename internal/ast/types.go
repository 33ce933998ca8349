// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package ast

import (
	"strings"
)

type TypeKind int

const (
	TypeNamed TypeKind = iota
	TypeSlice
	TypeMap
	TypeFuture
	TypeVoid
	TypeResponse
	TypeBlob
	TypeText
	TypeAny
)

// TypeRef — ссылка на тип целевого языка.
// Slice: Args[0] — элемент; Map: Args[0] ключ, Args[1] значение; Future: Args[0] результат.
type TypeRef struct {
	Kind    TypeKind
	Name    string
	Package string
	Args    []*TypeRef
	Pointer bool
}

func Named(name string, args ...*TypeRef) *TypeRef {

	return &TypeRef{Kind: TypeNamed, Name: name, Args: args}
}

func Qualified(pkg, name string) *TypeRef {

	return &TypeRef{Kind: TypeNamed, Name: name, Package: pkg}
}

func SliceOf(elem *TypeRef) *TypeRef {

	return &TypeRef{Kind: TypeSlice, Args: []*TypeRef{elem}}
}

func MapOf(key, value *TypeRef) *TypeRef {

	return &TypeRef{Kind: TypeMap, Args: []*TypeRef{key, value}}
}

func Future(result *TypeRef) *TypeRef {

	return &TypeRef{Kind: TypeFuture, Args: []*TypeRef{result}}
}

func Void() *TypeRef { return &TypeRef{Kind: TypeVoid} }

func Response() *TypeRef { return &TypeRef{Kind: TypeResponse} }

func Blob() *TypeRef { return &TypeRef{Kind: TypeBlob} }

func Text() *TypeRef { return &TypeRef{Kind: TypeText} }

func Any() *TypeRef { return &TypeRef{Kind: TypeAny} }

func (t *TypeRef) IsVoid() bool {

	return t == nil || t.Kind == TypeVoid
}

func (t *TypeRef) OrVoid() *TypeRef {

	if t == nil {
		return Void()
	}
	return t
}

func (t *TypeRef) IsFuture() bool {

	return t != nil && t.Kind == TypeFuture
}

// Result возвращает тип результата, снимая обёртку Future.
func (t *TypeRef) Result() *TypeRef {

	if t.IsFuture() && len(t.Args) > 0 {
		return t.Args[0]
	}
	return t
}

func (t *TypeRef) Elem() *TypeRef {

	if t == nil || len(t.Args) == 0 {
		return nil
	}
	return t.Args[0]
}

func (t *TypeRef) String() string {

	if t == nil {
		return "void"
	}
	var prefix string
	if t.Pointer {
		prefix = "*"
	}
	switch t.Kind {
	case TypeVoid:
		return "void"
	case TypeResponse:
		return "Response"
	case TypeBlob:
		return "Blob"
	case TypeText:
		return "Text"
	case TypeAny:
		return "any"
	case TypeSlice:
		return prefix + "[]" + t.Elem().String()
	case TypeMap:
		return prefix + "map[" + t.Args[0].String() + "]" + t.Args[1].String()
	case TypeFuture:
		return "Future<" + t.Elem().String() + ">"
	}
	name := t.Name
	if t.Package != "" {
		name = t.Package + "." + name
	}
	if len(t.Args) > 0 {
		args := make([]string, 0, len(t.Args))
		for _, arg := range t.Args {
			args = append(args, arg.String())
		}
		name += "<" + strings.Join(args, ", ") + ">"
	}
	return prefix + name
}
