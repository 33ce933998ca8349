// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"

	"clientgen/plugins/client-go/goimports"
)

// GoFile — исходный файл клиента. Импорты группируются относительно module.
type GoFile struct {
	*jen.File
	name   string
	module string
}

func NewSrcFile(name, pkgName, module string) GoFile {
	return GoFile{
		File:   jen.NewFile(pkgName),
		name:   name,
		module: module,
	}
}

func (src GoFile) Name() string {
	return src.name
}

// Bytes возвращает отформатированный исходный код.
func (src GoFile) Bytes() (data []byte, err error) {

	var buf bytes.Buffer
	if err = src.File.Render(&buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", src.name, err)
	}
	return goimports.Format(src.name, buf.Bytes(), src.module)
}
