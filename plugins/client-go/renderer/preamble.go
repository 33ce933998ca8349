// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	. "github.com/dave/jennifer/jen" // nolint:staticcheck
)

// RenderClient рендерит тип клиента, опции и вспомогательные функции,
// на которые опираются методы.
func (r *ClientRenderer) RenderClient() GoFile {

	srcFile := r.newFile(FileClient)
	srcFile.ImportName(PackageBytes, "bytes")
	srcFile.ImportName(PackageFmt, "fmt")
	srcFile.ImportName(PackageReflect, "reflect")
	srcFile.ImportName(PackageStrconv, "strconv")
	srcFile.ImportName(PackageStrings, "strings")
	srcFile.ImportName(PackageTime, "time")
	srcFile.ImportName(PackageURL, "url")

	r.renderOptions(&srcFile)
	srcFile.Line().Add(r.clientStruct())
	srcFile.Line().Add(r.clientNew())
	srcFile.Line().Add(r.clientURI())
	srcFile.Line().Add(r.clientSend())
	renderErrors(&srcFile)
	renderAsync(&srcFile)
	renderEncoding(&srcFile)
	return srcFile
}

func (r *ClientRenderer) receiver() *Statement {
	return Id(varClient).Op("*").Id(r.clientName)
}

func (r *ClientRenderer) renderOptions(srcFile *GoFile) {

	srcFile.Line().Type().Id("Option").Func().Params(r.receiver())

	srcFile.Line().Comment("HTTPClient задаёт http-клиент для запросов.")
	srcFile.Func().Id("HTTPClient").Params(Id("httpClient").Op("*").Qual(PackageHttp, "Client")).Params(Id("Option")).Block(
		Return(Func().Params(r.receiver()).Block(
			If(Id("httpClient").Op("!=").Nil()).Block(
				Id(varClient).Dot("httpClient").Op("=").Id("httpClient"),
			),
		)),
	)

	srcFile.Line().Comment("Headers добавляет заголовки к каждому запросу.")
	srcFile.Func().Id("Headers").Params(Id("headers").Qual(PackageHttp, "Header")).Params(Id("Option")).Block(
		Return(Func().Params(r.receiver()).Block(
			Id(varClient).Dot("headers").Op("=").Id("headers").Dot("Clone").Call(),
		)),
	)
}

func (r *ClientRenderer) clientStruct() Code {

	return Type().Id(r.clientName).Struct(
		Id("baseURL").String(),
		Id("httpClient").Op("*").Qual(PackageHttp, "Client"),
		Id("headers").Qual(PackageHttp, "Header"),
	)
}

func (r *ClientRenderer) clientNew() Code {

	return Func().Id("New").Params(Id("baseURL").String(), Id("opts").Op("...").Id("Option")).Params(r.receiver()).Block(
		Line(),
		Id(varClient).Op("=").Op("&").Id(r.clientName).Values(Dict{
			Id("baseURL"):    Qual(PackageStrings, "TrimSuffix").Call(Id("baseURL"), Lit("/")),
			Id("httpClient"): Qual(PackageHttp, "DefaultClient"),
		}),
		For(List(Id("_"), Id("op")).Op(":=").Range().Id("opts")).Block(
			Id("op").Call(Id(varClient)),
		),
		Return(),
	)
}

func (r *ClientRenderer) clientURI() Code {

	return Func().Params(r.receiver()).Id("uri").Params(Id("path").String()).String().Block(
		Return(Id(varClient).Dot("baseURL").Op("+").Lit("/").Op("+").Qual(PackageStrings, "TrimPrefix").Call(Id("path"), Lit("/"))),
	)
}

func (r *ClientRenderer) clientSend() Code {

	return Func().Params(r.receiver()).Id("send").
		Params(
			Id(varCtx).Qual(PackageContext, "Context"),
			Id("method").String(),
			Id("requestURI").String(),
			Id("content").Qual(PackageIO, "Reader"),
			Id("contentType").String(),
		).
		Params(Id(varResponse).Op("*").Qual(PackageHttp, "Response"), Err().Error()).
		Block(
			Line(),
			Var().Id("request").Op("*").Qual(PackageHttp, "Request"),
			If(
				List(Id("request"), Err()).Op("=").Qual(PackageHttp, "NewRequestWithContext").Call(Id(varCtx), Id("method"), Id("requestURI"), Id("content")),
				Err().Op("!=").Nil(),
			).Block(Return()),
			For(List(Id("key"), Id("values")).Op(":=").Range().Id(varClient).Dot("headers")).Block(
				For(List(Id("_"), Id("value")).Op(":=").Range().Id("values")).Block(
					Id("request").Dot("Header").Dot("Add").Call(Id("key"), Id("value")),
				),
			),
			If(Id("contentType").Op("!=").Lit("")).Block(
				Id("request").Dot("Header").Dot("Set").Call(Lit("Content-Type"), Id("contentType")),
			),
			Return(Id(varClient).Dot("httpClient").Dot("Do").Call(Id("request"))),
		)
}

func renderErrors(srcFile *GoFile) {

	srcFile.Line().Comment("HTTPError — ответ с неуспешным статусом.")
	srcFile.Type().Id("HTTPError").Struct(
		Id("StatusCode").Int(),
		Id("Status").String(),
		Id("Body").Index().Byte(),
	)

	srcFile.Line().Func().Params(Id("e").Op("*").Id("HTTPError")).Id("Error").Params().String().Block(
		Return(Qual(PackageFmt, "Sprintf").Call(Lit("unexpected response status %s"), Id("e").Dot("Status"))),
	)

	srcFile.Line().Func().Id("ensureSuccessStatusCode").Params(Id(varResponse).Op("*").Qual(PackageHttp, "Response")).Error().Block(
		Line(),
		If(Id(varResponse).Dot("StatusCode").Op(">=").Lit(200).Op("&&").Id(varResponse).Dot("StatusCode").Op("<").Lit(300)).Block(
			Return(Nil()),
		),
		Defer().Id(varResponse).Dot("Body").Dot("Close").Call(),
		List(Id("body"), Id("_")).Op(":=").Qual(PackageIO, "ReadAll").Call(Qual(PackageIO, "LimitReader").Call(Id(varResponse).Dot("Body"), Lit(4096))),
		Return(Op("&").Id("HTTPError").Values(Dict{
			Id("StatusCode"): Id(varResponse).Dot("StatusCode"),
			Id("Status"):     Id(varResponse).Dot("Status"),
			Id("Body"):       Id("body"),
		})),
	)
}

func renderAsync(srcFile *GoFile) {

	srcFile.Line().Comment("Result — результат асинхронного вызова.")
	srcFile.Type().Id("Result").Types(Id("T").Any()).Struct(
		Id("Value").Id("T"),
		Id("Err").Error(),
	)

	srcFile.Line().Func().Id("goAsync").Types(Id("T").Any()).
		Params(Id("fn").Func().Params().Params(Id("T"), Error())).
		Op("<-").Chan().Id("Result").Types(Id("T")).
		Block(
			Line(),
			Id("future").Op(":=").Make(Chan().Id("Result").Types(Id("T")), Lit(1)),
			Go().Func().Params().Block(
				Defer().Close(Id("future")),
				Var().Id("result").Id("Result").Types(Id("T")),
				List(Id("result").Dot("Value"), Id("result").Dot("Err")).Op("=").Id("fn").Call(),
				Id("future").Op("<-").Id("result"),
			).Call(),
			Return(Id("future")),
		)

	srcFile.Line().Func().Id("goAsyncVoid").
		Params(Id("fn").Func().Params().Error()).
		Op("<-").Chan().Error().
		Block(
			Line(),
			Id("future").Op(":=").Make(Chan().Error(), Lit(1)),
			Go().Func().Params().Block(
				Defer().Close(Id("future")),
				Id("future").Op("<-").Id("fn").Call(),
			).Call(),
			Return(Id("future")),
		)
}

func renderEncoding(srcFile *GoFile) {

	srcFile.Line().Func().Id("formatValue").Params(Id(varValue).Any()).String().Block(
		Line(),
		Id("rv").Op(":=").Qual(PackageReflect, "ValueOf").Call(Id(varValue)),
		For(Id("rv").Dot("Kind").Call().Op("==").Qual(PackageReflect, "Pointer")).Block(
			If(Id("rv").Dot("IsNil").Call()).Block(Return(Lit(""))),
			Id("rv").Op("=").Id("rv").Dot("Elem").Call(),
		),
		If(Op("!").Id("rv").Dot("IsValid").Call()).Block(Return(Lit(""))),
		If(List(Id("t"), Id("ok")).Op(":=").Id("rv").Dot("Interface").Call().Assert(Qual(PackageTime, "Time")), Id("ok")).Block(
			Return(Id("t").Dot("Format").Call(Qual(PackageTime, "RFC3339Nano"))),
		),
		Return(Qual(PackageFmt, "Sprint").Call(Id("rv").Dot("Interface").Call())),
	)

	srcFile.Line().Func().Id("escapePath").Params(Id(varValue).Any()).String().Block(
		Return(Qual(PackageURL, "PathEscape").Call(Id("formatValue").Call(Id(varValue)))),
	)

	srcFile.Line().Func().Id("escapeQuery").Params(Id(varValue).Any()).String().Block(
		Return(Qual(PackageURL, "QueryEscape").Call(Id("formatValue").Call(Id(varValue)))),
	)

	srcFile.Line().Comment("escapeQueryList кодирует срез как повторяющийся параметр строки запроса.")
	srcFile.Func().Id("escapeQueryList").Params(Id("name").String(), Id(varValue).Any()).String().Block(
		Line(),
		Id("rv").Op(":=").Qual(PackageReflect, "ValueOf").Call(Id(varValue)),
		If(Id("rv").Dot("Kind").Call().Op("!=").Qual(PackageReflect, "Slice").Op("&&").Id("rv").Dot("Kind").Call().Op("!=").Qual(PackageReflect, "Array")).Block(
			Return(Id("escapeQuery").Call(Id(varValue))),
		),
		Id("values").Op(":=").Make(Index().String(), Lit(0), Id("rv").Dot("Len").Call()),
		For(Id("i").Op(":=").Lit(0), Id("i").Op("<").Id("rv").Dot("Len").Call(), Id("i").Op("++")).Block(
			Id("values").Op("=").Append(Id("values"), Id("escapeQuery").Call(Id("rv").Dot("Index").Call(Id("i")).Dot("Interface").Call())),
		),
		Return(Qual(PackageStrings, "Join").Call(Id("values"), Lit("&").Op("+").Qual(PackageURL, "QueryEscape").Call(Id("name")).Op("+").Lit("="))),
	)

	srcFile.Line().Func().Id("jsonContent").Params(Id(varValue).Any()).Params(Id("content").Qual(PackageIO, "Reader"), Err().Error()).Block(
		Line(),
		Var().Id(varData).Index().Byte(),
		If(List(Id(varData), Err()).Op("=").Qual(PackageJSON, "Marshal").Call(Id(varValue)), Err().Op("!=").Nil()).Block(Return()),
		Return(Qual(PackageBytes, "NewReader").Call(Id(varData)), Nil()),
	)

	srcFile.Line().Comment("readJSONString читает из ответа одно скалярное JSON-значение как текст.")
	srcFile.Func().Id("readJSONString").Params(Id("decoder").Op("*").Qual(PackageJSON, "Decoder")).Params(Id(varText).String(), Err().Error()).Block(
		Line(),
		Id("decoder").Dot("UseNumber").Call(),
		Var().Id("token").Qual(PackageJSON, "Token"),
		If(List(Id("token"), Err()).Op("=").Id("decoder").Dot("Token").Call(), Err().Op("!=").Nil()).Block(Return()),
		Switch(Id(varValue).Op(":=").Id("token").Assert(Type())).Block(
			Case(String()).Block(Return(Id(varValue), Nil())),
			Case(Qual(PackageJSON, "Number")).Block(Return(Id(varValue).Dot("String").Call(), Nil())),
			Case(Bool()).Block(Return(Qual(PackageStrconv, "FormatBool").Call(Id(varValue)), Nil())),
			Case(Nil()).Block(Return(Lit(""), Nil())),
		),
		Return(Lit(""), Qual(PackageFmt, "Errorf").Call(Lit("unexpected json token %v"), Id("token"))),
	)

	srcFile.Line().Func().Id("parsePrimitive").Types(Id("T").Any()).Params(Id(varText).String()).Params(Id(varValue).Id("T"), Err().Error()).Block(
		Line(),
		List(Id("_"), Err()).Op("=").Qual(PackageFmt, "Sscan").Call(Id(varText), Op("&").Id(varValue)),
		Return(),
	)
}
