// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientgen/internal/model"
)

const itemsYAML = `
name: items
operations:
  - name: GetItem
    httpMethod: GET
    route: api/items/{id}
    params:
      - name: id
        binding: FromUri
        type: {name: int, kind: int32}
    returns: {name: Item, kind: object}
    docs: ["Returns an item."]
`

const ordersJSON = `{
  "operations": [
    {
      "name": "CreateOrder",
      "httpMethod": "POST",
      "route": "api/orders",
      "params": [{"name": "order", "type": {"name": "Order", "kind": "object"}}]
    }
  ]
}`

func writeFile(t *testing.T, dir, name, data string) string {

	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))
	return path
}

func TestLoad(t *testing.T) {

	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "items.yaml", itemsYAML)
	writeFile(t, dir, "nested/orders.json", ordersJSON)
	writeFile(t, dir, "nested/readme.md", "# not a descriptor")

	docs, err := Load([]string{filepath.Join(dir, "**", "*")})
	require.NoError(t, err)
	require.Len(t, docs, 2)

	items := docs[0]
	assert.Equal(t, "items", items.Name)
	require.Len(t, items.Operations, 1)
	op := items.Operations[0]
	assert.Equal(t, "GetItem", op.Name)
	assert.Equal(t, model.BindingFromUri, op.Params[0].Binding)
	assert.Equal(t, model.TypeKindInt32, op.Params[0].Type.Kind)
	assert.Equal(t, model.TypeKindObject, op.Returns.Kind)

	orders := docs[1]
	assert.Equal(t, "orders", orders.Name)
	assert.Equal(t, "POST", orders.Operations[0].Method())
	assert.Nil(t, orders.Operations[0].Returns)
}

func TestLoadNoMatches(t *testing.T) {

	t.Parallel()

	_, err := Load([]string{filepath.Join(t.TempDir(), "*.yaml")})
	assert.ErrorContains(t, err, "no descriptor documents")
}

func TestDecode(t *testing.T) {

	t.Parallel()

	doc, err := Decode([]byte(ordersJSON), "")
	require.NoError(t, err)
	assert.Len(t, doc.Operations, 1)

	doc, err = Decode([]byte(itemsYAML), "")
	require.NoError(t, err)
	assert.Equal(t, "items", doc.Name)

	_, err = Decode([]byte(`{"operations": [`), FormatJSON)
	assert.ErrorContains(t, err, "malformed document")

	_, err = Decode([]byte(`operations: [{name: A}, {name: A}]`), FormatYAML)
	assert.ErrorContains(t, err, "more than once")

	_, err = Decode([]byte(`{}`), "xml")
	assert.Error(t, err)
}
