// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package ast

import (
	"strconv"
	"strings"
)

type ExprKind int

const (
	KindIdent ExprKind = iota
	KindLit
	KindConcat
	KindEscape
	KindNewURI
	KindWait
	KindAwait
	KindSend
	KindEmptyContent
	KindSerialize
	KindReadStream
	KindTextReader
	KindReadToEnd
	KindJSONReader
	KindReadJSONString
	KindDeserialize
	KindParsePrimitive
)

// Expr — узел выражения. Набор реализаций закрыт.
type Expr interface {
	Kind() ExprKind
	String() string
	exprNode()
}

type Ident struct {
	Name string
}

type Lit struct {
	Value string
}

// Concat — конкатенация строковых частей (построение URI).
type Concat struct {
	Parts []Expr
}

// Escape — ссылка на параметр, закодированная для пути или строки запроса.
// Optional: значение может отсутствовать и тогда даёт пустую строку.
type Escape struct {
	Value    Expr
	Query    bool
	Optional bool
}

// NewURI — построение URI относительно базового адреса клиента.
type NewURI struct {
	Path Expr
}

// Wait — блокирующее ожидание результата сетевой операции.
type Wait struct {
	X Expr
}

// Await — точка приостановки асинхронного кода.
type Await struct {
	X Expr
}

// Send — вызов транспорта. Payload == nil для GET/DELETE.
type Send struct {
	Method      string
	URI         Expr
	Payload     Expr
	ContentType string
}

type EmptyContent struct{}

// Serialize — JSON-представление значения в качестве тела запроса.
type Serialize struct {
	Value Expr
}

// ReadStream — чтение тела ответа как потока.
type ReadStream struct {
	Response Expr
}

type TextReader struct {
	Stream Expr
}

type ReadToEnd struct {
	Reader Expr
}

type JSONReader struct {
	Stream Expr
}

type ReadJSONString struct {
	Reader Expr
}

type Deserialize struct {
	Type   *TypeRef
	Reader Expr
}

// ParsePrimitive — разбор текста именем примитивного типа целевого языка.
type ParsePrimitive struct {
	Type *TypeRef
	Text Expr
}

func (*Ident) Kind() ExprKind          { return KindIdent }
func (*Lit) Kind() ExprKind            { return KindLit }
func (*Concat) Kind() ExprKind         { return KindConcat }
func (*Escape) Kind() ExprKind         { return KindEscape }
func (*NewURI) Kind() ExprKind         { return KindNewURI }
func (*Wait) Kind() ExprKind           { return KindWait }
func (*Await) Kind() ExprKind          { return KindAwait }
func (*Send) Kind() ExprKind           { return KindSend }
func (*EmptyContent) Kind() ExprKind   { return KindEmptyContent }
func (*Serialize) Kind() ExprKind      { return KindSerialize }
func (*ReadStream) Kind() ExprKind     { return KindReadStream }
func (*TextReader) Kind() ExprKind     { return KindTextReader }
func (*ReadToEnd) Kind() ExprKind      { return KindReadToEnd }
func (*JSONReader) Kind() ExprKind     { return KindJSONReader }
func (*ReadJSONString) Kind() ExprKind { return KindReadJSONString }
func (*Deserialize) Kind() ExprKind    { return KindDeserialize }
func (*ParsePrimitive) Kind() ExprKind { return KindParsePrimitive }

func (*Ident) exprNode()          {}
func (*Lit) exprNode()            {}
func (*Concat) exprNode()         {}
func (*Escape) exprNode()         {}
func (*NewURI) exprNode()         {}
func (*Wait) exprNode()           {}
func (*Await) exprNode()          {}
func (*Send) exprNode()           {}
func (*EmptyContent) exprNode()   {}
func (*Serialize) exprNode()      {}
func (*ReadStream) exprNode()     {}
func (*TextReader) exprNode()     {}
func (*ReadToEnd) exprNode()      {}
func (*JSONReader) exprNode()     {}
func (*ReadJSONString) exprNode() {}
func (*Deserialize) exprNode()    {}
func (*ParsePrimitive) exprNode() {}

func (e *Ident) String() string { return e.Name }

func (e *Lit) String() string { return strconv.Quote(e.Value) }

func (e *Concat) String() string {

	parts := make([]string, 0, len(e.Parts))
	for _, part := range e.Parts {
		parts = append(parts, part.String())
	}
	return strings.Join(parts, "+")
}

func (e *Escape) String() string {

	fn := "escapePath"
	if e.Query {
		fn = "escapeQuery"
	}
	if e.Optional {
		fn += "?"
	}
	return fn + "(" + e.Value.String() + ")"
}

func (e *NewURI) String() string { return "new Uri(baseUri, " + e.Path.String() + ")" }

func (e *Wait) String() string { return e.X.String() + ".Result" }

func (e *Await) String() string { return "await " + e.X.String() }

func (e *Send) String() string {

	args := []string{e.Method, e.URI.String()}
	if e.Payload != nil {
		args = append(args, e.Payload.String())
	}
	if e.ContentType != "" {
		args = append(args, strconv.Quote(e.ContentType))
	}
	return "send(" + strings.Join(args, ", ") + ")"
}

func (e *EmptyContent) String() string { return "emptyContent()" }

func (e *Serialize) String() string { return "serializeJSON(" + e.Value.String() + ")" }

func (e *ReadStream) String() string { return e.Response.String() + ".readStream()" }

func (e *TextReader) String() string { return "new TextReader(" + e.Stream.String() + ")" }

func (e *ReadToEnd) String() string { return e.Reader.String() + ".readToEnd()" }

func (e *JSONReader) String() string { return "new JsonReader(" + e.Stream.String() + ")" }

func (e *ReadJSONString) String() string { return e.Reader.String() + ".readAsString()" }

func (e *Deserialize) String() string {

	return "deserialize<" + e.Type.String() + ">(" + e.Reader.String() + ")"
}

func (e *ParsePrimitive) String() string {

	return e.Type.String() + ".Parse(" + e.Text.String() + ")"
}

func Id(name string) *Ident { return &Ident{Name: name} }

func String(value string) *Lit { return &Lit{Value: value} }
