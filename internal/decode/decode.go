// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package decode

import (
	"fmt"

	"clientgen/internal/ast"
	"clientgen/internal/classify"
	"clientgen/internal/diag"
)

const (
	VarStream       = "stream"
	VarStreamReader = "streamReader"
	VarJSONReader   = "jsonReader"
)

// Suspender оборачивает операцию ввода-вывода в точку ожидания стиля вызова.
type Suspender interface {
	Suspend(x ast.Expr) ast.Expr
}

type Request struct {
	Operation      string
	Shape          classify.Shape
	StringAsString bool
	Response       ast.Expr
	Target         *ast.TypeRef
}

// Decode строит операторы, превращающие успешный ответ в возвращаемое значение.
func Decode(req Request, style Suspender) (stmts []ast.Stmt, err error) {

	readStream := func() ast.Expr {
		return style.Suspend(&ast.ReadStream{Response: req.Response})
	}
	jsonScope := func(ret ast.Expr) []ast.Stmt {
		return []ast.Stmt{
			&ast.Scope{Name: VarStream, Resource: readStream(), Body: []ast.Stmt{
				&ast.Scope{Name: VarJSONReader, Resource: &ast.JSONReader{Stream: ast.Id(VarStream)}, Body: []ast.Stmt{
					&ast.Return{Value: ret},
				}},
			}},
		}
	}

	switch req.Shape {
	case classify.ShapeVoid:
		return nil, nil
	case classify.ShapePassthrough, classify.ShapeGenericWrapper:
		return []ast.Stmt{&ast.Return{Value: req.Response}}, nil
	case classify.ShapeBlob:
		return []ast.Stmt{&ast.Return{Value: readStream()}}, nil
	case classify.ShapeStringLike:
		if req.StringAsString {
			return []ast.Stmt{
				&ast.Scope{Name: VarStream, Resource: readStream(), Body: []ast.Stmt{
					&ast.Scope{Name: VarStreamReader, Resource: &ast.TextReader{Stream: ast.Id(VarStream)}, Body: []ast.Stmt{
						&ast.Return{Value: &ast.ReadToEnd{Reader: ast.Id(VarStreamReader)}},
					}},
				}},
			}, nil
		}
		return jsonScope(&ast.ReadJSONString{Reader: ast.Id(VarJSONReader)}), nil
	case classify.ShapeChar, classify.ShapeComplexObject:
		return jsonScope(&ast.Deserialize{Type: req.Target, Reader: ast.Id(VarJSONReader)}), nil
	case classify.ShapePrimitive:
		return jsonScope(&ast.ParsePrimitive{Type: req.Target, Text: &ast.ReadJSONString{Reader: ast.Id(VarJSONReader)}}), nil
	}
	return nil, &diag.InternalError{Operation: req.Operation, Reason: fmt.Sprintf("no decode strategy for shape %s", req.Shape)}
}

// ReturnType — объявленный тип результата для формы ответа.
func ReturnType(shape classify.Shape, target *ast.TypeRef) *ast.TypeRef {

	switch shape {
	case classify.ShapeVoid:
		return ast.Void()
	case classify.ShapePassthrough, classify.ShapeGenericWrapper:
		return ast.Response()
	case classify.ShapeBlob:
		return ast.Blob()
	case classify.ShapeStringLike:
		return ast.Text()
	}
	return target
}
