// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package uri

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientgen/internal/model"
)

func param(name string, kind model.TypeKind, binding model.Binding) *model.Parameter {

	return &model.Parameter{Name: name, Type: &model.TypeRef{Name: string(kind), Kind: kind}, Binding: binding}
}

func TestBuild(t *testing.T) {

	t.Parallel()

	body := param("item", model.TypeKindObject, model.BindingNone)
	nullable := param("limit", model.TypeKindInt32, model.BindingNone)
	nullable.Type.Nullable = true

	tests := []struct {
		name   string
		route  string
		params []*model.Parameter
		body   *model.Parameter
		want   string
	}{
		{
			name:  "no params",
			route: "api/items",
			want:  `new Uri(baseUri, "api/items")`,
		},
		{
			name:   "path placeholder",
			route:  "api/items/{id}",
			params: []*model.Parameter{param("id", model.TypeKindInt32, model.BindingNone)},
			want:   `new Uri(baseUri, "api/items/"+escapePath(id))`,
		},
		{
			name:   "placeholder in middle",
			route:  "api/items/{id:int}/tags",
			params: []*model.Parameter{param("id", model.TypeKindInt32, model.BindingNone)},
			want:   `new Uri(baseUri, "api/items/"+escapePath(id)+"/tags")`,
		},
		{
			name:  "query params",
			route: "api/items/search",
			params: []*model.Parameter{
				param("name", model.TypeKindString, model.BindingNone),
				param("page", model.TypeKindInt32, model.BindingNone),
			},
			want: `new Uri(baseUri, "api/items/search?name="+escapeQuery(name)+"&page="+escapeQuery(page))`,
		},
		{
			name:  "route with existing query",
			route: "api/items?sort=asc",
			params: []*model.Parameter{
				param("page", model.TypeKindInt32, model.BindingNone),
			},
			want: `new Uri(baseUri, "api/items?sort=asc&page="+escapeQuery(page))`,
		},
		{
			name:  "placeholder in query",
			route: "api/items?id={id}",
			params: []*model.Parameter{
				param("id", model.TypeKindInt32, model.BindingNone),
			},
			want: `new Uri(baseUri, "api/items?id="+escapeQuery(id))`,
		},
		{
			name:  "body excluded",
			route: "api/items",
			params: []*model.Parameter{
				body,
			},
			body: body,
			want: `new Uri(baseUri, "api/items")`,
		},
		{
			name:  "complex from uri",
			route: "api/items",
			params: []*model.Parameter{
				param("filter", model.TypeKindObject, model.BindingFromUri),
			},
			want: `new Uri(baseUri, "api/items?filter="+escapeQuery(filter))`,
		},
		{
			name:  "form param skipped",
			route: "api/items",
			params: []*model.Parameter{
				param("name", model.TypeKindString, model.BindingFromForm),
			},
			want: `new Uri(baseUri, "api/items")`,
		},
		{
			name:   "nullable query",
			route:  "api/items",
			params: []*model.Parameter{nullable},
			want:   `new Uri(baseUri, "api/items?limit="+escapeQuery?(limit))`,
		},
		{
			name:   "optional placeholder",
			route:  "api/items/{id:int?}",
			params: []*model.Parameter{param("id", model.TypeKindInt32, model.BindingNone)},
			want:   `new Uri(baseUri, "api/items/"+escapePath?(id))`,
		},
		{
			name:   "catch-all placeholder",
			route:  "files/{*path}",
			params: []*model.Parameter{param("path", model.TypeKindString, model.BindingNone)},
			want:   `new Uri(baseUri, "files/"+escapePath(path))`,
		},
		{
			name:   "only placeholder",
			route:  "{id}",
			params: []*model.Parameter{param("id", model.TypeKindInt32, model.BindingNone)},
			want:   `new Uri(baseUri, escapePath(id))`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := Build(tt.route, tt.params, tt.body)
			require.NotNil(t, result.URI)
			got := result.URI.String()
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, `+""`)
		})
	}
}

func TestBuildUnresolved(t *testing.T) {

	t.Parallel()

	result := Build("api/{tenant}/items/{id}", []*model.Parameter{param("id", model.TypeKindInt32, model.BindingNone)}, nil)
	assert.Equal(t, []string{"tenant"}, result.Unresolved)
	assert.Equal(t, []string{"id"}, result.Path)
	assert.Equal(t, `new Uri(baseUri, "api/{tenant}/items/"+escapePath(id))`, result.URI.String())
}

func TestBuildIdempotent(t *testing.T) {

	t.Parallel()

	params := []*model.Parameter{
		param("id", model.TypeKindInt32, model.BindingNone),
		param("q", model.TypeKindString, model.BindingNone),
	}
	first := Build("api/items/{id}", params, nil).URI.String()
	for range 10 {
		assert.Equal(t, first, Build("api/items/{id}", params, nil).URI.String())
	}
	assert.True(t, strings.HasSuffix(first, `escapeQuery(q))`))
}

func TestIsQuery(t *testing.T) {

	t.Parallel()

	assert.True(t, IsQuery(param("id", model.TypeKindInt32, model.BindingNone)))
	assert.True(t, IsQuery(param("at", model.TypeKindDateTime, model.BindingFromUri)))
	assert.True(t, IsQuery(param("f", model.TypeKindObject, model.BindingFromUri)))
	assert.False(t, IsQuery(param("f", model.TypeKindObject, model.BindingNone)))
	assert.False(t, IsQuery(param("s", model.TypeKindString, model.BindingFromBody)))
	assert.False(t, IsQuery(param("s", model.TypeKindString, model.BindingFromForm)))
}
