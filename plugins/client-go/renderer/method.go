// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"fmt"
	"strings"

	. "github.com/dave/jennifer/jen" // nolint:staticcheck

	"clientgen/internal/ast"
	"clientgen/internal/common"
	"clientgen/internal/emitter"
)

type methodCode struct {
	docs []string
	code Code
}

// methodWriter переводит тело одной функции в операторы Go.
// Scope раскрывается в последовательность с defer: ресурс живёт до выхода из метода.
type methodWriter struct {
	fn       *ast.Function
	names    map[string]string
	result   *ast.TypeRef
	ownsBody bool
}

func MethodName(fn *ast.Function) string {

	return common.ToCamel(fn.Name)
}

func ParamName(name string) string {

	return common.SafeName(common.ToLowerCamel(name), reservedNames)
}

func (r *ClientRenderer) renderMethod(fn *ast.Function) (method methodCode, err error) {

	w := &methodWriter{
		fn:       fn,
		names:    make(map[string]string, len(fn.Params)),
		result:   fn.Returns.Result(),
		ownsBody: ownsBody(fn.Body),
	}
	params := []Code{Id(varCtx).Qual(PackageContext, "Context")}
	for _, param := range fn.Params {
		w.names[param.Name] = ParamName(param.Name)
		params = append(params, Id(w.names[param.Name]).Add(typeCode(param.Type)))
	}

	var body []Code
	if body, err = w.block(fn.Body); err != nil {
		return
	}
	if !hasReturn(fn.Body) {
		body = append(body, Return())
	}

	results := []Code{Err().Error()}
	if !w.result.IsVoid() {
		results = []Code{Id(varResponse).Add(typeCode(w.result)), Err().Error()}
	}

	stmt := Func().Params(Id(varClient).Op("*").Id(r.clientName)).Id(MethodName(fn)).Params(params...)
	switch {
	case !fn.IsAsync():
		stmt.Params(results...).Block(body...)
	case w.result.IsVoid():
		stmt.Op("<-").Chan().Error().Block(
			Return(Id("goAsyncVoid").Call(Func().Params().Params(results...).Block(body...))),
		)
	default:
		stmt.Op("<-").Chan().Id("Result").Types(typeCode(w.result)).Block(
			Return(Id("goAsync").Call(Func().Params().Params(results...).Block(body...))),
		)
	}
	return methodCode{docs: methodDocs(MethodName(fn), fn.Docs), code: stmt}, nil
}

func methodDocs(name string, docs []string) (lines []string) {

	for _, doc := range docs {
		switch {
		case strings.HasPrefix(doc, emitter.DocParamPrefix):
			param, text, _ := strings.Cut(strings.TrimPrefix(doc, emitter.DocParamPrefix), " ")
			lines = append(lines, ParamName(param)+": "+text)
		case strings.HasPrefix(doc, emitter.DocReturnsPrefix):
			lines = append(lines, "returns: "+strings.TrimPrefix(doc, emitter.DocReturnsPrefix))
		default:
			lines = append(lines, doc)
		}
	}
	if len(lines) > 0 {
		lines[0] = name + " " + lines[0]
	}
	return
}

func (w *methodWriter) block(stmts []ast.Stmt) (codes []Code, err error) {

	for _, stmt := range stmts {
		var stmtCodes []Code
		if stmtCodes, err = w.stmt(stmt); err != nil {
			return
		}
		codes = append(codes, stmtCodes...)
	}
	return
}

func returnOnErr() Code {
	return Err().Op("!=").Nil()
}

func (w *methodWriter) stmt(stmt ast.Stmt) (codes []Code, err error) {

	switch s := stmt.(type) {
	case *ast.VarDecl:
		return w.varDecl(s)
	case *ast.EnsureSuccess:
		var resp Code
		if resp, err = w.expr(s.Response); err != nil {
			return
		}
		return []Code{If(Err().Op("=").Id("ensureSuccessStatusCode").Call(resp), returnOnErr()).Block(Return())}, nil
	case *ast.Scope:
		return w.scope(s)
	case *ast.Return:
		return w.ret(s)
	}
	return nil, fmt.Errorf("unsupported statement %s", stmt)
}

func (w *methodWriter) varDecl(s *ast.VarDecl) (codes []Code, err error) {

	if send, ok := unwrap(s.Value).(*ast.Send); ok {
		var call Code
		if call, err = w.send(send); err != nil {
			return
		}
		codes = []Code{
			Var().Id(s.Name).Op("*").Qual(PackageHttp, "Response"),
			If(List(Id(s.Name), Err()).Op("=").Add(call), returnOnErr()).Block(Return()),
		}
		if w.ownsBody {
			codes = append(codes, Defer().Id(s.Name).Dot("Body").Dot("Close").Call())
		}
		return
	}
	var value Code
	if value, err = w.expr(s.Value); err != nil {
		return
	}
	return []Code{Id(s.Name).Op(":=").Add(value)}, nil
}

func (w *methodWriter) scope(s *ast.Scope) (codes []Code, err error) {

	switch res := unwrap(s.Resource).(type) {
	case *ast.Serialize:
		var value Code
		if value, err = w.expr(res.Value); err != nil {
			return
		}
		codes = []Code{
			Var().Id(s.Name).Qual(PackageIO, "Reader"),
			If(List(Id(s.Name), Err()).Op("=").Id("jsonContent").Call(value), returnOnErr()).Block(Return()),
		}
	case *ast.ReadStream:
		var resp Code
		if resp, err = w.expr(res.Response); err != nil {
			return
		}
		codes = []Code{
			Id(s.Name).Op(":=").Add(resp).Dot("Body"),
			Defer().Id(s.Name).Dot("Close").Call(),
		}
	case *ast.TextReader:
		var stream Code
		if stream, err = w.expr(res.Stream); err != nil {
			return
		}
		codes = []Code{Id(s.Name).Op(":=").Qual(PackageBufio, "NewReader").Call(stream)}
	case *ast.JSONReader:
		var stream Code
		if stream, err = w.expr(res.Stream); err != nil {
			return
		}
		codes = []Code{Id(s.Name).Op(":=").Qual(PackageJSON, "NewDecoder").Call(stream)}
	default:
		return nil, fmt.Errorf("unsupported resource %s", s.Resource)
	}
	var body []Code
	if body, err = w.block(s.Body); err != nil {
		return
	}
	return append(codes, body...), nil
}

func (w *methodWriter) ret(s *ast.Return) (codes []Code, err error) {

	if s.Value == nil {
		return []Code{Return()}, nil
	}
	switch value := unwrap(s.Value).(type) {
	case *ast.Ident:
		codes = []Code{Id(varResponse).Op("=").Add(w.ident(value))}
	case *ast.ReadStream:
		var resp Code
		if resp, err = w.expr(value.Response); err != nil {
			return
		}
		codes = []Code{Id(varResponse).Op("=").Add(resp).Dot("Body")}
	case *ast.ReadToEnd:
		var reader Code
		if reader, err = w.expr(value.Reader); err != nil {
			return
		}
		codes = []Code{
			Var().Id(varData).Index().Byte(),
			If(List(Id(varData), Err()).Op("=").Qual(PackageIO, "ReadAll").Call(reader), returnOnErr()).Block(Return()),
			Id(varResponse).Op("=").String().Call(Id(varData)),
		}
	case *ast.ReadJSONString:
		var reader Code
		if reader, err = w.expr(value.Reader); err != nil {
			return
		}
		codes = []Code{List(Id(varResponse), Err()).Op("=").Id("readJSONString").Call(reader)}
	case *ast.Deserialize:
		var reader Code
		if reader, err = w.expr(value.Reader); err != nil {
			return
		}
		codes = []Code{Err().Op("=").Add(reader).Dot("Decode").Call(Op("&").Id(varResponse))}
	case *ast.ParsePrimitive:
		return w.parsePrimitive(value)
	default:
		return nil, fmt.Errorf("unsupported return value %s", s.Value)
	}
	return append(codes, Return()), nil
}

func (w *methodWriter) parsePrimitive(value *ast.ParsePrimitive) (codes []Code, err error) {

	text, ok := value.Text.(*ast.ReadJSONString)
	if !ok {
		return nil, fmt.Errorf("unsupported primitive source %s", value.Text)
	}
	var reader Code
	if reader, err = w.expr(text.Reader); err != nil {
		return
	}
	codes = []Code{
		Var().Id(varText).String(),
		If(List(Id(varText), Err()).Op("=").Id("readJSONString").Call(reader), returnOnErr()).Block(Return()),
		List(Id(varResponse), Err()).Op("=").Id("parsePrimitive").Types(typeCode(value.Type)).Call(Id(varText)),
		Return(),
	}
	return
}

func (w *methodWriter) send(send *ast.Send) (call Code, err error) {

	var requestURI Code
	if requestURI, err = w.expr(send.URI); err != nil {
		return
	}
	method := Lit(send.Method)
	if name, found := httpMethods[send.Method]; found {
		method = Qual(PackageHttp, name)
	}
	payload := Code(Nil())
	if send.Payload != nil {
		if payload, err = w.expr(send.Payload); err != nil {
			return
		}
	}
	return Id(varClient).Dot("send").Call(Id(varCtx), method, requestURI, payload, Lit(send.ContentType)), nil
}

func (w *methodWriter) isSlice(name string) bool {

	for _, param := range w.fn.Params {
		if param.Name == name {
			return param.Type.Kind == ast.TypeSlice
		}
	}
	return false
}

func (w *methodWriter) ident(e *ast.Ident) Code {

	if name, found := w.names[e.Name]; found {
		return Id(name)
	}
	return Id(e.Name)
}

func (w *methodWriter) expr(expr ast.Expr) (code Code, err error) {

	switch e := expr.(type) {
	case *ast.Ident:
		return w.ident(e), nil
	case *ast.Lit:
		return Lit(e.Value), nil
	case *ast.Concat:
		concat := &Statement{}
		for i, part := range e.Parts {
			var partCode Code
			if partCode, err = w.expr(part); err != nil {
				return
			}
			if i > 0 {
				concat.Op("+")
			}
			concat.Add(partCode)
		}
		return concat, nil
	case *ast.Escape:
		var value Code
		if value, err = w.expr(e.Value); err != nil {
			return
		}
		if !e.Query {
			return Id("escapePath").Call(value), nil
		}
		if id, ok := e.Value.(*ast.Ident); ok && w.isSlice(id.Name) {
			return Id("escapeQueryList").Call(Lit(id.Name), value), nil
		}
		return Id("escapeQuery").Call(value), nil
	case *ast.NewURI:
		var path Code
		if path, err = w.expr(e.Path); err != nil {
			return
		}
		return Id(varClient).Dot("uri").Call(path), nil
	case *ast.Wait:
		return w.expr(e.X)
	case *ast.Await:
		return w.expr(e.X)
	case *ast.Send:
		return w.send(e)
	case *ast.EmptyContent:
		return Qual(PackageHttp, "NoBody"), nil
	}
	return nil, fmt.Errorf("unsupported expression %s", expr)
}

// unwrap снимает точку ожидания: в Go оба стиля вызывают транспорт напрямую.
func unwrap(expr ast.Expr) ast.Expr {

	for {
		switch e := expr.(type) {
		case *ast.Wait:
			expr = e.X
		case *ast.Await:
			expr = e.X
		default:
			return expr
		}
	}
}

// ownsBody: тело ответа закрывается самим методом, а не через поток или вызывающего.
func ownsBody(body []ast.Stmt) (owns bool) {

	owns = true
	ast.Walk(body, func(stmt ast.Stmt) bool {
		switch s := stmt.(type) {
		case *ast.Scope:
			if _, ok := unwrap(s.Resource).(*ast.ReadStream); ok {
				owns = false
			}
		case *ast.Return:
			switch unwrap(s.Value).(type) {
			case *ast.Ident, *ast.ReadStream:
				owns = false
			}
		}
		return owns
	})
	return
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

func typeCode(t *ast.TypeRef) Code {

	code := &Statement{}
	if t.Pointer {
		code.Op("*")
	}
	switch t.Kind {
	case ast.TypeSlice:
		return code.Index().Add(typeCode(t.Elem()))
	case ast.TypeMap:
		return code.Map(typeCode(t.Args[0])).Add(typeCode(t.Args[1]))
	case ast.TypeAny:
		return code.Any()
	case ast.TypeResponse:
		return code.Op("*").Qual(PackageHttp, "Response")
	case ast.TypeBlob:
		return code.Qual(PackageIO, "ReadCloser")
	case ast.TypeText:
		return code.String()
	case ast.TypeFuture:
		if t.Elem().IsVoid() {
			return code.Op("<-").Chan().Error()
		}
		return code.Op("<-").Chan().Id("Result").Types(typeCode(t.Elem()))
	}
	if t.Package != "" {
		code.Qual(t.Package, t.Name)
	} else {
		code.Id(t.Name)
	}
	if len(t.Args) > 0 {
		args := make([]Code, 0, len(t.Args))
		for _, arg := range t.Args {
			args = append(args, typeCode(arg))
		}
		code.Types(args...)
	}
	return code
}
