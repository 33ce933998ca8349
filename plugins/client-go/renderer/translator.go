// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"path"
	"strings"

	"clientgen/internal/ast"
	"clientgen/internal/common"
	"clientgen/internal/model"
)

// Translator переводит типы описания API в типы Go.
// Объектные типы квалифицируются typesPkg, если он задан.
type Translator struct {
	typesPkg  string
	overrides map[string]string
}

func NewTranslator(typesPkg string, overrides map[string]string) *Translator {

	return &Translator{typesPkg: typesPkg, overrides: common.LowerKeys(overrides)}
}

func (tr *Translator) Translate(t *model.TypeRef) *ast.TypeRef {

	if t == nil {
		return ast.Void()
	}
	if override, found := tr.overrides[strings.ToLower(t.Name)]; found && t.Name != "" {
		return ast.Named(override)
	}
	ref := tr.translate(t)
	if t.Nullable && t.IsSimple() {
		ref.Pointer = true
	}
	return ref
}

func (tr *Translator) translate(t *model.TypeRef) *ast.TypeRef {

	switch t.Kind {
	case model.TypeKindString, model.TypeKindChar, model.TypeKindUUID:
		return ast.Named("string")
	case model.TypeKindBool, model.TypeKindByte,
		model.TypeKindInt, model.TypeKindInt8, model.TypeKindInt16, model.TypeKindInt32, model.TypeKindInt64,
		model.TypeKindUint, model.TypeKindUint8, model.TypeKindUint16, model.TypeKindUint32, model.TypeKindUint64,
		model.TypeKindFloat32, model.TypeKindFloat64:
		return ast.Named(string(t.Kind))
	case model.TypeKindDecimal:
		return ast.Named("float64")
	case model.TypeKindDateTime:
		return ast.Qualified(PackageTime, "Time")
	case model.TypeKindStream:
		return ast.Qualified(PackageIO, "Reader")
	case model.TypeKindArray:
		if len(t.Args) == 0 {
			return ast.SliceOf(ast.Any())
		}
		return ast.SliceOf(tr.Translate(t.Args[0]))
	case model.TypeKindMap:
		if len(t.Args) < 2 {
			return ast.MapOf(ast.Named("string"), ast.Any())
		}
		return ast.MapOf(tr.Translate(t.Args[0]), tr.Translate(t.Args[1]))
	case model.TypeKindObject, model.TypeKindGeneric:
		ref := tr.named(t.Name)
		for _, arg := range t.Args {
			ref.Args = append(ref.Args, tr.Translate(arg))
		}
		return ref
	}
	return ast.Any()
}

func (tr *Translator) named(source string) *ast.TypeRef {

	name := TypeName(source)
	if tr.typesPkg != "" {
		return ast.Qualified(tr.typesPkg, name)
	}
	return ast.Named(name)
}

// TypeName: Api.Models.Item -> Item, Paged`1 -> Paged.
func TypeName(source string) string {

	if idx := strings.LastIndexAny(source, "./+"); idx >= 0 {
		source = source[idx+1:]
	}
	if idx := strings.IndexByte(source, '`'); idx >= 0 {
		source = source[:idx]
	}
	return common.ToCamel(source)
}

// Mapper печатает типы так, как они выглядят в сгенерированном Go-коде.
type Mapper struct{}

func (Mapper) Render(t *ast.TypeRef) string {

	if t == nil {
		return ""
	}
	var prefix string
	if t.Pointer {
		prefix = "*"
	}
	switch t.Kind {
	case ast.TypeVoid:
		return ""
	case ast.TypeResponse:
		return "*http.Response"
	case ast.TypeBlob:
		return "io.ReadCloser"
	case ast.TypeText:
		return "string"
	case ast.TypeAny:
		return prefix + "any"
	case ast.TypeSlice:
		return prefix + "[]" + Mapper{}.Render(t.Elem())
	case ast.TypeMap:
		return prefix + "map[" + Mapper{}.Render(t.Args[0]) + "]" + Mapper{}.Render(t.Args[1])
	case ast.TypeFuture:
		if t.Elem().IsVoid() {
			return "<-chan error"
		}
		return "<-chan Result[" + Mapper{}.Render(t.Elem()) + "]"
	}
	name := t.Name
	if t.Package != "" {
		name = path.Base(t.Package) + "." + name
	}
	if len(t.Args) > 0 {
		args := make([]string, 0, len(t.Args))
		for _, arg := range t.Args {
			args = append(args, Mapper{}.Render(arg))
		}
		name += "[" + strings.Join(args, ", ") + "]"
	}
	return prefix + name
}
