// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package emitter

import (
	"log/slog"

	"clientgen/internal/ast"
	"clientgen/internal/body"
	"clientgen/internal/classify"
	"clientgen/internal/decode"
	"clientgen/internal/diag"
	"clientgen/internal/model"
	"clientgen/internal/translate"
	"clientgen/internal/uri"
)

const (
	DefaultContentType = "application/json;charset=UTF-8"

	VarRequestURI      = "requestUri"
	VarContent         = "content"
	VarResponseMessage = "responseMessage"
)

type Options struct {
	ContentType    string
	StringAsString bool
	Body           body.Options
	Classifier     classify.Options
}

func DefaultOptions() Options {

	return Options{
		ContentType: DefaultContentType,
		Body:        body.DefaultOptions(),
		Classifier:  classify.DefaultOptions(),
	}
}

// Emitter строит клиентские функции по описаниям операций.
// Не хранит состояния между вызовами и безопасен для параллельного использования.
type Emitter struct {
	opts       Options
	translator translate.TypeTranslator
	classifier *classify.Classifier
}

// Output — результат для одной операции. Function == nil, если функция не построена.
type Output struct {
	Function    *ast.Function
	Diagnostics []diag.Diagnostic
}

func New(translator translate.TypeTranslator, mapper translate.TextMapper, opts Options) *Emitter {

	if opts.ContentType == "" {
		opts.ContentType = DefaultContentType
	}
	return &Emitter{
		opts:       opts,
		translator: translator,
		classifier: classify.New(opts.Classifier, translator, mapper),
	}
}

// Emit строит функцию заданного стиля. Неподдерживаемый HTTP-метод даёт
// предупреждение без функции; ошибка возвращается для некорректной операции.
func (e *Emitter) Emit(op *model.Operation, style CallStyle) (out Output, err error) {

	method := op.Method()
	switch method {
	case model.MethodGet, model.MethodPost, model.MethodPut, model.MethodDelete:
	default:
		slog.Warn("unsupported http method", slog.String("operation", op.Name), slog.String("method", op.HTTPMethod))
		out.Diagnostics = append(out.Diagnostics, diag.Warning(op.Name, diag.CodeUnsupportedMethod, "http method %q is not supported", op.HTTPMethod))
		return
	}

	var bodyParam *model.Parameter
	if method == model.MethodPost || method == model.MethodPut {
		if bodyParam, err = body.Select(op, e.opts.Body); err != nil {
			return
		}
	}

	shape, supported := e.classifier.Classify(op.Returns)
	var target *ast.TypeRef
	if op.Returns != nil {
		target = e.translator.Translate(op.Returns)
	}
	returns := target
	if supported {
		returns = decode.ReturnType(shape, target)
	}

	b := ast.NewBuilder(style.FunctionName(op.Name)).
		Operation(op.Name).
		Endpoint(method, op.Route).
		Returns(style.WrapReturn(returns.OrVoid())).
		Doc(docLines(op)...)
	for _, param := range op.Params {
		b.Param(param.Name, e.translator.Translate(param.Type))
	}

	route := uri.Build(op.Route, op.Params, bodyParam)
	out.Diagnostics = append(out.Diagnostics, bindingDiagnostics(op, route, bodyParam)...)
	b.Add(&ast.VarDecl{Name: VarRequestURI, Value: route.URI})

	send := &ast.Send{Method: method, URI: ast.Id(VarRequestURI)}
	if method == model.MethodPost || method == model.MethodPut {
		send.ContentType = e.opts.ContentType
		send.Payload = &ast.EmptyContent{}
		if bodyParam != nil {
			b.Open(VarContent, &ast.Serialize{Value: ast.Id(bodyParam.Name)})
			send.Payload = ast.Id(VarContent)
		}
	}
	b.Add(
		&ast.VarDecl{Name: VarResponseMessage, Value: style.Suspend(send)},
		&ast.EnsureSuccess{Response: ast.Id(VarResponseMessage)},
	)

	if !supported {
		out.Diagnostics = append(out.Diagnostics, diag.Warning(op.Name, diag.CodeUnsupportedType, "return type %s is not supported", op.Returns))
		out.Function = b.Build()
		return
	}

	var stmts []ast.Stmt
	if stmts, err = decode.Decode(decode.Request{
		Operation:      op.Name,
		Shape:          shape,
		StringAsString: e.opts.StringAsString || e.classifier.ForcesText(op.Returns),
		Response:       ast.Id(VarResponseMessage),
		Target:         target,
	}, style); err != nil {
		return
	}
	b.Add(stmts...)
	out.Function = b.Build()
	slog.Debug("function emitted",
		slog.String("operation", op.Name),
		slog.String("function", out.Function.Name),
		slog.String("style", style.Name()),
		slog.String("shape", shape.String()),
	)
	return
}

func bindingDiagnostics(op *model.Operation, route uri.Result, bodyParam *model.Parameter) (items []diag.Diagnostic) {

	for _, name := range route.Unresolved {
		items = append(items, diag.Warning(op.Name, diag.CodeUnresolvedPlaceholder, "route placeholder {%s} has no matching parameter", name))
	}
	bound := make(map[string]struct{}, len(op.Params))
	for _, name := range route.Path {
		bound[name] = struct{}{}
	}
	for _, name := range route.Query {
		bound[name] = struct{}{}
	}
	if bodyParam != nil {
		bound[bodyParam.Name] = struct{}{}
	}
	for _, param := range op.Params {
		if _, found := bound[param.Name]; !found {
			items = append(items, diag.Warning(op.Name, diag.CodeUnboundParameter, "parameter %s is not sent with the request", param.Name))
		}
	}
	return
}
