// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package goimports

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"sort"
	"strconv"
	"strings"
)

type importSpec struct {
	name, path string
}

func (imp importSpec) String() string {

	if imp.name != "" {
		return imp.name + " " + strconv.Quote(imp.path)
	}
	return strconv.Quote(imp.path)
}

// isStandardPackage: первый элемент пути стандартного пакета не содержит точки.
func isStandardPackage(path string) bool {

	first, _, _ := strings.Cut(path, "/")
	return !strings.Contains(first, ".")
}

func isLocalPackage(path, module string) bool {

	return module != "" && (path == module || strings.HasPrefix(path, module+"/"))
}

func groupImports(filename string, src []byte, module string) ([]byte, error) {

	fileSet := token.NewFileSet()
	f, err := parser.ParseFile(fileSet, filename, src, parser.ImportsOnly)
	if err != nil {
		return nil, err
	}

	var decls []*ast.GenDecl
	for _, decl := range f.Decls {
		if genDecl, ok := decl.(*ast.GenDecl); ok && genDecl.Tok == token.IMPORT {
			decls = append(decls, genDecl)
		}
	}
	if len(f.Imports) <= 1 || len(decls) == 0 {
		return src, nil
	}

	var groups [3][]importSpec
	for _, imp := range f.Imports {
		spec := importSpec{path: strings.Trim(imp.Path.Value, `"`)}
		if imp.Name != nil {
			spec.name = imp.Name.Name
		}
		switch {
		case isStandardPackage(spec.path):
			groups[0] = append(groups[0], spec)
		case isLocalPackage(spec.path, module):
			groups[1] = append(groups[1], spec)
		default:
			groups[2] = append(groups[2], spec)
		}
	}

	var block bytes.Buffer
	block.WriteString("import (\n")
	written := false
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		if written {
			block.WriteByte('\n')
		}
		sort.Slice(group, func(i, j int) bool {
			if group[i].path != group[j].path {
				return group[i].path < group[j].path
			}
			return group[i].name < group[j].name
		})
		for _, imp := range group {
			block.WriteString("\t" + imp.String() + "\n")
		}
		written = true
	}
	block.WriteString(")")

	start := fileSet.Position(decls[0].Pos()).Offset
	end := fileSet.Position(decls[len(decls)-1].End()).Offset
	result := make([]byte, 0, len(src)+block.Len())
	result = append(result, src[:start]...)
	result = append(result, block.Bytes()...)
	result = append(result, src[end:]...)

	if result, err = format.Source(result); err != nil {
		return nil, fmt.Errorf("format.Source: %w", err)
	}
	return result, nil
}
