// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package goimports

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
	"golang.org/x/tools/imports"
)

var processOptions = &imports.Options{
	Comments:   true,
	TabIndent:  true,
	TabWidth:   8,
	FormatOnly: true,
}

// Format форматирует исходник и раскладывает импорты по группам:
// стандартная библиотека, пакеты модуля localModule, внешние пакеты.
func Format(filename string, src []byte, localModule string) (out []byte, err error) {

	if out, err = imports.Process(filename, src, processOptions); err != nil {
		return nil, fmt.Errorf("format %s: %w", filename, err)
	}
	return groupImports(filename, out, localModule)
}

// ModulePath ищет go.mod от dir вверх и возвращает путь модуля.
func ModulePath(dir string) string {

	for {
		if data, err := os.ReadFile(filepath.Join(dir, "go.mod")); err == nil {
			return modfile.ModulePath(data)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
