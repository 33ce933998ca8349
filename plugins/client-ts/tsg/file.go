// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package tsg

import (
	"sort"
	"strings"
)

type File struct {
	imports    map[string][]string
	statements []*Statement
	comment    string
}

func NewFile() *File {
	return &File{imports: make(map[string][]string)}
}

func (f *File) Comment(comment string) *File {
	f.comment = comment
	return f
}

// ImportType добавляет type-only импорт имён из path.
func (f *File) ImportType(path string, names ...string) *File {
	f.imports[path] = append(f.imports[path], names...)
	return f
}

func (f *File) Add(stmt *Statement) *File {
	if stmt != nil {
		f.statements = append(f.statements, stmt)
	}
	return f
}

func (f *File) String() string {

	var buf strings.Builder
	if f.comment != "" {
		for _, line := range strings.Split(f.comment, "\n") {
			buf.WriteString("// " + line + "\n")
		}
		buf.WriteString("\n")
	}

	paths := make([]string, 0, len(f.imports))
	for path := range f.imports {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		names := dedup(f.imports[path])
		buf.WriteString("import type { " + strings.Join(names, ", ") + " } from \"" + path + "\";\n")
	}
	if len(paths) > 0 {
		buf.WriteString("\n")
	}

	for i, stmt := range f.statements {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(stmt.String())
	}
	return buf.String()
}

func (f *File) Bytes() []byte {
	return []byte(f.String())
}

func dedup(names []string) []string {

	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	out := sorted[:0]
	for i, name := range sorted {
		if i > 0 && name == sorted[i-1] {
			continue
		}
		out = append(out, name)
	}
	return out
}
