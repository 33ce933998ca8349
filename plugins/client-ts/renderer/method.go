// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"clientgen/internal/ast"
	"clientgen/internal/emitter"
	"clientgen/plugins/client-ts/tsg"
)

var errBlocking = errors.New("typescript clients support only the async call style")

type methodWriter struct {
	names  map[string]string
	slices map[string]bool
	result *ast.TypeRef
}

func renderMethod(g *tsg.Group, fn *ast.Function) (err error) {

	if !fn.IsAsync() {
		return errBlocking
	}
	w := &methodWriter{
		names:  make(map[string]string, len(fn.Params)),
		slices: make(map[string]bool),
		result: fn.Returns.Result(),
	}
	params := make([]string, 0, len(fn.Params))
	for _, param := range fn.Params {
		w.names[param.Name] = tsSafeName(param.Name)
		w.slices[param.Name] = param.Type.Kind == ast.TypeSlice
		params = append(params, w.names[param.Name]+": "+Mapper{}.Render(param.Type))
	}

	var body []string
	if body, err = w.block(fn.Body); err != nil {
		return
	}
	if !w.result.IsVoid() && !hasReturn(fn.Body) {
		body = append(body, "return undefined as unknown as "+Mapper{}.Render(w.result)+";")
	}

	g.Doc(w.docs(fn.Docs)...)
	g.Block(fmt.Sprintf("async %s(%s): %s", MethodName(fn), strings.Join(params, ", "), Mapper{}.Render(fn.Returns)), func(g *tsg.Group) {
		for _, line := range body {
			g.Line("%s", line)
		}
	})
	return
}

func (w *methodWriter) docs(docs []string) (lines []string) {

	for _, doc := range docs {
		if strings.HasPrefix(doc, emitter.DocParamPrefix) {
			param, text, _ := strings.Cut(strings.TrimPrefix(doc, emitter.DocParamPrefix), " ")
			if name, found := w.names[param]; found {
				param = name
			}
			doc = emitter.DocParamPrefix + param + " " + text
		}
		lines = append(lines, doc)
	}
	return
}

func (w *methodWriter) block(stmts []ast.Stmt) (lines []string, err error) {

	for _, stmt := range stmts {
		var stmtLines []string
		if stmtLines, err = w.stmt(stmt); err != nil {
			return
		}
		lines = append(lines, stmtLines...)
	}
	return
}

func (w *methodWriter) stmt(stmt ast.Stmt) (lines []string, err error) {

	var expr string
	switch s := stmt.(type) {
	case *ast.VarDecl:
		if expr, err = w.expr(s.Value); err != nil {
			return
		}
		return []string{"const " + s.Name + " = " + expr + ";"}, nil
	case *ast.EnsureSuccess:
		if expr, err = w.expr(s.Response); err != nil {
			return
		}
		return []string{"await ensureSuccessStatusCode(" + expr + ");"}, nil
	case *ast.Scope:
		if expr, err = w.resource(s.Resource); err != nil {
			return
		}
		var body []string
		if body, err = w.block(s.Body); err != nil {
			return
		}
		return append([]string{"const " + s.Name + " = " + expr + ";"}, body...), nil
	case *ast.Return:
		if s.Value == nil {
			return []string{"return;"}, nil
		}
		if expr, err = w.returnValue(s.Value); err != nil {
			return
		}
		return []string{"return " + expr + ";"}, nil
	}
	return nil, fmt.Errorf("unsupported statement %s", stmt)
}

// resource — значение, которое держит Scope. Тело ответа читается целиком, освобождать нечего.
func (w *methodWriter) resource(expr ast.Expr) (string, error) {

	switch e := expr.(type) {
	case *ast.Serialize:
		value, err := w.expr(e.Value)
		return "JSON.stringify(" + value + ")", err
	case *ast.Await:
		if read, ok := e.X.(*ast.ReadStream); ok {
			resp, err := w.expr(read.Response)
			return "await " + resp + ".text()", err
		}
	case *ast.TextReader:
		return w.expr(e.Stream)
	case *ast.JSONReader:
		stream, err := w.expr(e.Stream)
		return "JSON.parse(" + stream + ") as unknown", err
	}
	return "", fmt.Errorf("unsupported resource %s", expr)
}

func (w *methodWriter) returnValue(expr ast.Expr) (string, error) {

	switch e := expr.(type) {
	case *ast.Await:
		if read, ok := e.X.(*ast.ReadStream); ok {
			resp, err := w.expr(read.Response)
			return "await " + resp + ".blob()", err
		}
	case *ast.ReadToEnd:
		return w.expr(e.Reader)
	case *ast.ReadJSONString:
		reader, err := w.expr(e.Reader)
		return "readJSONString(" + reader + ")", err
	case *ast.Deserialize:
		reader, err := w.expr(e.Reader)
		return reader + " as " + Mapper{}.Render(e.Type), err
	case *ast.ParsePrimitive:
		text, err := w.returnValue(e.Text)
		if err != nil {
			return "", err
		}
		switch (Mapper{}).render(e.Type) {
		case "number":
			return "Number(" + text + ")", nil
		case "boolean":
			return text + ` === "true"`, nil
		}
		return text + " as unknown as " + Mapper{}.Render(e.Type), nil
	}
	return w.expr(expr)
}

func (w *methodWriter) expr(expr ast.Expr) (code string, err error) {

	switch e := expr.(type) {
	case *ast.Ident:
		if name, found := w.names[e.Name]; found {
			return name, nil
		}
		return e.Name, nil
	case *ast.Lit:
		return quote(e.Value), nil
	case *ast.Concat:
		parts := make([]string, 0, len(e.Parts))
		for _, part := range e.Parts {
			var partCode string
			if partCode, err = w.expr(part); err != nil {
				return
			}
			parts = append(parts, partCode)
		}
		return strings.Join(parts, " + "), nil
	case *ast.Escape:
		var value string
		if value, err = w.expr(e.Value); err != nil {
			return
		}
		if id, ok := e.Value.(*ast.Ident); ok && e.Query && w.slices[id.Name] {
			return value + ".map((item) => encodeURIComponent(String(item))).join(" + quote("&"+id.Name+"=") + ")", nil
		}
		if e.Optional {
			return "(" + value + ` == null ? "" : encodeURIComponent(String(` + value + ")))", nil
		}
		return "encodeURIComponent(String(" + value + "))", nil
	case *ast.NewURI:
		var path string
		if path, err = w.expr(e.Path); err != nil {
			return
		}
		return "new URL(" + path + ", this.baseUri)", nil
	case *ast.Await:
		var x string
		if x, err = w.expr(e.X); err != nil {
			return
		}
		return "await " + x, nil
	case *ast.Wait:
		return "", errBlocking
	case *ast.Send:
		return w.send(e)
	case *ast.EmptyContent:
		return `""`, nil
	}
	return "", fmt.Errorf("unsupported expression %s", expr)
}

func (w *methodWriter) send(send *ast.Send) (code string, err error) {

	var requestURI string
	if requestURI, err = w.expr(send.URI); err != nil {
		return
	}
	args := []string{quote(send.Method), requestURI}
	if send.Payload != nil {
		var payload string
		if payload, err = w.expr(send.Payload); err != nil {
			return
		}
		args = append(args, payload)
		if send.ContentType != "" {
			args = append(args, quote(send.ContentType))
		}
	}
	return "this.send(" + strings.Join(args, ", ") + ")", nil
}

// quote печатает строковый литерал без HTML-экранирования.
func quote(value string) string {

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return `""`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func hasReturn(body []ast.Stmt) (found bool) {

	ast.Walk(body, func(stmt ast.Stmt) bool {
		if _, ok := stmt.(*ast.Return); ok {
			found = true
		}
		return !found
	})
	return
}
