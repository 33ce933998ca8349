// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"fmt"

	"clientgen/internal/ast"
)

const (
	FileClient  = "client.go"
	FileMethods = "methods.go"
)

// ClientRenderer собирает Go-клиент из клиентских функций.
type ClientRenderer struct {
	pkgName    string
	clientName string
	module     string
}

func NewClientRenderer(pkgName, clientName, module string) *ClientRenderer {

	if clientName == "" {
		clientName = "Client"
	}
	return &ClientRenderer{
		pkgName:    pkgName,
		clientName: clientName,
		module:     module,
	}
}

func (r *ClientRenderer) newFile(name string) GoFile {

	srcFile := NewSrcFile(name, r.pkgName, r.module)
	srcFile.PackageComment(DoNotEdit)
	srcFile.ImportName(PackageContext, "context")
	srcFile.ImportName(PackageHttp, "http")
	srcFile.ImportName(PackageIO, "io")
	srcFile.ImportName(PackageJSON, "json")
	return srcFile
}

// RenderMethods рендерит методы клиента в порядке функций.
func (r *ClientRenderer) RenderMethods(fns []*ast.Function) (srcFile GoFile, err error) {

	srcFile = r.newFile(FileMethods)
	srcFile.ImportName(PackageBufio, "bufio")
	seen := make(map[string]string, len(fns))
	for _, fn := range fns {
		name := MethodName(fn)
		if prev, found := seen[name]; found {
			return srcFile, fmt.Errorf("method %s of operation %s clashes with operation %s", name, fn.Operation, prev)
		}
		seen[name] = fn.Operation
		var method methodCode
		if method, err = r.renderMethod(fn); err != nil {
			return srcFile, fmt.Errorf("operation %s: %w", fn.Operation, err)
		}
		srcFile.Line()
		for _, line := range method.docs {
			srcFile.Comment(line)
		}
		srcFile.Add(method.code)
	}
	return
}
