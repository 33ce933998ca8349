// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"strings"

	"clientgen/internal/ast"
	"clientgen/internal/common"
	"clientgen/internal/model"
)

// builtinTypes — имена, которые не требуют объявления в клиенте.
var builtinTypes = map[string]struct{}{
	"string":  {},
	"number":  {},
	"boolean": {},
	"any":     {},
	"unknown": {},
	"Blob":    {},
}

type Translator struct {
	overrides map[string]string
}

func NewTranslator(overrides map[string]string) *Translator {

	return &Translator{overrides: common.LowerKeys(overrides)}
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
	case model.TypeKindString, model.TypeKindChar, model.TypeKindUUID, model.TypeKindDateTime:
		return ast.Named("string")
	case model.TypeKindBool:
		return ast.Named("boolean")
	case model.TypeKindByte, model.TypeKindDecimal,
		model.TypeKindInt, model.TypeKindInt8, model.TypeKindInt16, model.TypeKindInt32, model.TypeKindInt64,
		model.TypeKindUint, model.TypeKindUint8, model.TypeKindUint16, model.TypeKindUint32, model.TypeKindUint64,
		model.TypeKindFloat32, model.TypeKindFloat64:
		return ast.Named("number")
	case model.TypeKindStream:
		return ast.Named("Blob")
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
		ref := ast.Named(TypeName(t.Name))
		for _, arg := range t.Args {
			ref.Args = append(ref.Args, tr.Translate(arg))
		}
		return ref
	}
	return ast.Any()
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

// Mapper печатает типы TypeScript. Pointer означает допустимость null.
type Mapper struct{}

func (m Mapper) Render(t *ast.TypeRef) string {

	if t == nil {
		return "void"
	}
	text := m.render(t)
	if t.Pointer {
		return text + " | null"
	}
	return text
}

func (m Mapper) render(t *ast.TypeRef) string {

	switch t.Kind {
	case ast.TypeVoid:
		return "void"
	case ast.TypeResponse:
		return "Response"
	case ast.TypeBlob:
		return "Blob"
	case ast.TypeText:
		return "string"
	case ast.TypeAny:
		return "any"
	case ast.TypeSlice:
		elem := m.Render(t.Elem())
		if strings.Contains(elem, " ") {
			elem = "(" + elem + ")"
		}
		return elem + "[]"
	case ast.TypeMap:
		return "Record<" + m.Render(t.Args[0]) + ", " + m.Render(t.Args[1]) + ">"
	case ast.TypeFuture:
		return "Promise<" + m.Render(t.Elem()) + ">"
	}
	if len(t.Args) == 0 {
		return t.Name
	}
	args := make([]string, 0, len(t.Args))
	for _, arg := range t.Args {
		args = append(args, m.Render(arg))
	}
	return t.Name + "<" + strings.Join(args, ", ") + ">"
}
