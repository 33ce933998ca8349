// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clientgen/internal/ast"
	"clientgen/internal/model"
)

func TestTranslator(t *testing.T) {

	t.Parallel()

	tests := []struct {
		name     string
		typesPkg string
		in       *model.TypeRef
		want     string
	}{
		{"string", "", &model.TypeRef{Kind: model.TypeKindString}, "string"},
		{"char", "", &model.TypeRef{Kind: model.TypeKindChar}, "string"},
		{"nullable int", "", &model.TypeRef{Kind: model.TypeKindInt64, Nullable: true}, "*int64"},
		{"datetime", "", &model.TypeRef{Kind: model.TypeKindDateTime}, "time.Time"},
		{"stream", "", &model.TypeRef{Kind: model.TypeKindStream}, "io.Reader"},
		{"object", "", &model.TypeRef{Name: "Api.Models.Item", Kind: model.TypeKindObject}, "Item"},
		{"qualified object", "example.com/api/types", &model.TypeRef{Name: "Item", Kind: model.TypeKindObject}, "types.Item"},
		{"array", "", &model.TypeRef{Kind: model.TypeKindArray, Args: []*model.TypeRef{{Kind: model.TypeKindInt}}}, "[]int"},
		{"map", "", &model.TypeRef{Kind: model.TypeKindMap, Args: []*model.TypeRef{{Kind: model.TypeKindString}, {Name: "Item", Kind: model.TypeKindObject}}}, "map[string]Item"},
		{"generic", "", &model.TypeRef{Name: "Paged`1", Kind: model.TypeKindGeneric, GenericDefinition: "Paged`1", Args: []*model.TypeRef{{Name: "Item", Kind: model.TypeKindObject}}}, "Paged[Item]"},
		{"any", "", &model.TypeRef{Kind: model.TypeKindAny}, "any"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NewTranslator(tt.typesPkg, nil).Translate(tt.in)
			assert.Equal(t, tt.want, Mapper{}.Render(got))
		})
	}
}

func TestTranslatorOverrides(t *testing.T) {

	t.Parallel()

	tr := NewTranslator("", map[string]string{"FileResult": "blobresponse"})
	got := tr.Translate(&model.TypeRef{Name: "FileResult", Kind: model.TypeKindObject})
	assert.Equal(t, "blobresponse", Mapper{}.Render(got))
}

func TestMapperSpecialTypes(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "*http.Response", Mapper{}.Render(ast.Response()))
	assert.Equal(t, "io.ReadCloser", Mapper{}.Render(ast.Blob()))
	assert.Equal(t, "string", Mapper{}.Render(ast.Text()))
	assert.Equal(t, "<-chan error", Mapper{}.Render(ast.Future(ast.Void())))
	assert.Equal(t, "<-chan Result[int]", Mapper{}.Render(ast.Future(ast.Named("int"))))
}

func TestTypeName(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "Item", TypeName("Api.Models.Item"))
	assert.Equal(t, "Paged", TypeName("Api.Paged`1"))
	assert.Equal(t, "OrderLine", TypeName("order_line"))
}
