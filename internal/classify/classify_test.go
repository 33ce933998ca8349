// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clientgen/internal/ast"
	"clientgen/internal/model"
)

type nameTranslator struct{}

func (nameTranslator) Translate(t *model.TypeRef) *ast.TypeRef {

	return ast.Named(t.Name)
}

type nameMapper map[string]string

func (m nameMapper) Render(t *ast.TypeRef) string {

	if text, ok := m[t.Name]; ok {
		return text
	}
	return t.Name
}

func TestClassify(t *testing.T) {

	t.Parallel()

	mapper := nameMapper{
		"Dynamic":  "any",
		"Download": "blobresponse",
		"Page":     "response",
	}
	c := New(DefaultOptions(), nameTranslator{}, mapper)

	tests := []struct {
		name  string
		in    *model.TypeRef
		shape Shape
		ok    bool
	}{
		{name: "void", in: nil, shape: ShapeVoid, ok: true},
		{name: "http response", in: &model.TypeRef{Name: "System.Net.Http.HttpResponseMessage", Kind: model.TypeKindObject}, shape: ShapePassthrough, ok: true},
		{name: "action result", in: &model.TypeRef{Name: "Microsoft.AspNetCore.Mvc.IActionResult", Kind: model.TypeKindObject}, shape: ShapePassthrough, ok: true},
		{
			name: "task wrapper",
			in: &model.TypeRef{
				Name:              "Task",
				Kind:              model.TypeKindGeneric,
				GenericDefinition: "System.Threading.Tasks.Task`1",
				Args:              []*model.TypeRef{{Name: "Item", Kind: model.TypeKindObject}},
			},
			shape: ShapeGenericWrapper,
			ok:    true,
		},
		{
			name: "other generic",
			in: &model.TypeRef{
				Name:              "List",
				Kind:              model.TypeKindGeneric,
				GenericDefinition: "System.Collections.Generic.List`1",
				Args:              []*model.TypeRef{{Name: "Item", Kind: model.TypeKindObject}},
			},
			shape: ShapeComplexObject,
			ok:    true,
		},
		{name: "any sentinel", in: &model.TypeRef{Name: "Dynamic", Kind: model.TypeKindObject}, shape: ShapePassthrough, ok: true},
		{name: "text sentinel", in: &model.TypeRef{Name: "Page", Kind: model.TypeKindObject}, shape: ShapeStringLike, ok: true},
		{name: "blob sentinel", in: &model.TypeRef{Name: "Download", Kind: model.TypeKindObject}, shape: ShapeBlob, ok: true},
		{name: "stream", in: &model.TypeRef{Name: "Stream", Kind: model.TypeKindStream}, shape: ShapeBlob, ok: true},
		{name: "string", in: &model.TypeRef{Name: "string", Kind: model.TypeKindString}, shape: ShapeStringLike, ok: true},
		{name: "char", in: &model.TypeRef{Name: "char", Kind: model.TypeKindChar}, shape: ShapeChar, ok: true},
		{name: "int", in: &model.TypeRef{Name: "int", Kind: model.TypeKindInt32}, shape: ShapePrimitive, ok: true},
		{name: "bool", in: &model.TypeRef{Name: "bool", Kind: model.TypeKindBool}, shape: ShapePrimitive, ok: true},
		{name: "nullable int", in: &model.TypeRef{Name: "int", Kind: model.TypeKindInt32, Nullable: true}, shape: ShapeComplexObject, ok: true},
		{name: "double", in: &model.TypeRef{Name: "double", Kind: model.TypeKindFloat64}, shape: ShapePrimitive, ok: true},
		{name: "object", in: &model.TypeRef{Name: "Item", Kind: model.TypeKindObject}, shape: ShapeComplexObject, ok: true},
		{name: "array", in: &model.TypeRef{Name: "Item[]", Kind: model.TypeKindArray}, shape: ShapeComplexObject, ok: true},
		{name: "map", in: &model.TypeRef{Name: "Dictionary", Kind: model.TypeKindMap}, shape: ShapeComplexObject, ok: true},
		{name: "decimal", in: &model.TypeRef{Name: "decimal", Kind: model.TypeKindDecimal}, ok: false},
		{name: "datetime", in: &model.TypeRef{Name: "DateTime", Kind: model.TypeKindDateTime}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			shape, ok := c.Classify(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.shape, shape, "got %s", shape)
			}
		})
	}
}

func TestClassifyWithoutMapper(t *testing.T) {

	t.Parallel()

	c := New(DefaultOptions(), nil, nil)
	shape, ok := c.Classify(&model.TypeRef{Name: "Dynamic", Kind: model.TypeKindObject})
	assert.True(t, ok)
	assert.Equal(t, ShapeComplexObject, shape)
	assert.False(t, c.ForcesText(&model.TypeRef{Name: "Page", Kind: model.TypeKindObject}))
}

func TestClassifyCustomPassthrough(t *testing.T) {

	t.Parallel()

	c := New(Options{Passthrough: []string{"Raw"}}, nil, nil)
	shape, ok := c.Classify(&model.TypeRef{Name: "Raw", Kind: model.TypeKindObject})
	assert.True(t, ok)
	assert.Equal(t, ShapePassthrough, shape)

	shape, _ = c.Classify(&model.TypeRef{Name: "System.Net.Http.HttpResponseMessage", Kind: model.TypeKindObject})
	assert.Equal(t, ShapeComplexObject, shape)
}

func TestForcesText(t *testing.T) {

	t.Parallel()

	c := New(DefaultOptions(), nameTranslator{}, nameMapper{"Page": "response"})
	assert.True(t, c.ForcesText(&model.TypeRef{Name: "Page", Kind: model.TypeKindObject}))
	assert.False(t, c.ForcesText(&model.TypeRef{Name: "Item", Kind: model.TypeKindObject}))
	assert.False(t, c.ForcesText(nil))
}
