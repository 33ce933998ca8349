// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"path"
)

const DoNotEdit = "Code generated by clientgen. DO NOT EDIT."

const (
	PackageBufio   = "bufio"
	PackageBytes   = "bytes"
	PackageContext = "context"
	PackageFmt     = "fmt"
	PackageHttp    = "net/http"
	PackageIO      = "io"
	PackageJSON    = "encoding/json"
	PackageReflect = "reflect"
	PackageStrconv = "strconv"
	PackageStrings = "strings"
	PackageTime    = "time"
	PackageURL     = "net/url"
)

// Локальные имена сгенерированных методов.
const (
	varClient   = "cli"
	varCtx      = "ctx"
	varErr      = "err"
	varResponse = "response"
	varData     = "data"
	varText     = "text"
	varValue    = "value"
)

var httpMethods = map[string]string{
	"GET":    "MethodGet",
	"POST":   "MethodPost",
	"PUT":    "MethodPut",
	"DELETE": "MethodDelete",
}

var goKeywords = []string{
	"break", "case", "chan", "const", "continue", "default", "defer", "else",
	"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
	"map", "package", "range", "return", "select", "struct", "switch", "type", "var",
}

// reservedNames: ключевые слова Go, импортируемые пакеты и локальные переменные тела метода.
var reservedNames = func() map[string]string {

	names := make(map[string]string)
	for _, word := range goKeywords {
		names[word] = word + "Arg"
	}
	for _, pkg := range []string{PackageBufio, PackageBytes, PackageContext, PackageFmt, PackageHttp, PackageIO,
		PackageJSON, PackageReflect, PackageStrconv, PackageStrings, PackageTime, PackageURL} {
		name := path.Base(pkg)
		names[name] = name + "Arg"
	}
	for _, word := range []string{varClient, varCtx, varErr, varResponse, varData, varText, varValue,
		"requestUri", "responseMessage", "content", "stream", "streamReader", "jsonReader",
		"goAsync", "goAsyncVoid", "ensureSuccessStatusCode", "escapePath", "escapeQuery", "escapeQueryList", "formatValue",
		"jsonContent", "readJSONString", "parsePrimitive"} {
		names[word] = word + "Arg"
	}
	return names
}()
