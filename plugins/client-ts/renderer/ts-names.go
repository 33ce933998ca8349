// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"clientgen/internal/ast"
	"clientgen/internal/common"
)

var tsReservedToSafe = map[string]string{
	"in":         "input",
	"default":    "defaultValue",
	"class":      "className",
	"type":       "typeName",
	"delete":     "deleteKey",
	"return":     "returnValue",
	"switch":     "switchValue",
	"throw":      "throwValue",
	"try":        "tryValue",
	"var":        "varValue",
	"while":      "whileValue",
	"with":       "withValue",
	"yield":      "yieldValue",
	"let":        "letValue",
	"const":      "constValue",
	"static":     "staticValue",
	"implements": "implementsValue",
	"interface":  "interfaceValue",
	"package":    "packageValue",
	"private":    "privateValue",
	"protected":  "protectedValue",
	"public":     "publicValue",
	"extends":    "extendsValue",
	"enum":       "enumValue",
	"export":     "exportValue",
	"import":     "importValue",
	"await":      "awaitValue",
	"async":      "asyncValue",
	"break":      "breakValue",
	"case":       "caseValue",
	"catch":      "catchValue",
	"continue":   "continueValue",
	"debugger":   "debuggerValue",
	"do":         "doValue",
	"else":       "elseValue",
	"finally":    "finallyValue",
	"for":        "forValue",
	"function":   "functionValue",
	"if":         "ifValue",
	"new":        "newValue",
	"this":       "thisValue",
	"typeof":     "typeofValue",
	"void":       "voidValue",
	// локальные переменные тела метода
	"requestUri":      "requestUriValue",
	"responseMessage": "responseMessageValue",
	"content":         "contentValue",
	"stream":          "streamValue",
	"streamReader":    "streamReaderValue",
	"jsonReader":      "jsonReaderValue",
}

func tsSafeName(name string) string {

	return common.SafeName(common.ToLowerCamel(name), tsReservedToSafe)
}

func MethodName(fn *ast.Function) string {

	return tsSafeName(fn.Name)
}
