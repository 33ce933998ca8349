// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientgen/internal/ast"
	"clientgen/internal/emitter"
	"clientgen/internal/model"
)

var (
	itemType = &model.TypeRef{Name: "Api.Models.Item", Kind: model.TypeKindObject}
	intType  = &model.TypeRef{Name: "Int32", Kind: model.TypeKindInt32}
)

func emit(t *testing.T, op *model.Operation, style emitter.CallStyle) *ast.Function {

	t.Helper()
	out, err := emitter.New(NewTranslator(nil), Mapper{}, emitter.DefaultOptions()).Emit(op, style)
	require.NoError(t, err)
	require.NotNil(t, out.Function)
	return out.Function
}

func render(t *testing.T, typesModule string, fns ...*ast.Function) string {

	t.Helper()
	file, err := NewClientRenderer("PetClient", typesModule).RenderClient(fns)
	require.NoError(t, err)
	return file.String()
}

func TestRenderGetComplex(t *testing.T) {

	t.Parallel()

	op := &model.Operation{
		Name:       "GetItem",
		HTTPMethod: "GET",
		Route:      "api/items/{id}",
		Params:     []*model.Parameter{{Name: "id", Type: intType, Docs: "item id"}},
		Returns:    itemType,
	}
	code := render(t, "", emit(t, op, emitter.Async))

	for _, want := range []string{
		"// " + DoNotEdit,
		"export type Item = Record<string, unknown>;",
		"export class PetClient {",
		"   * @param id item id",
		"  async getItemAsync(id: number): Promise<Item> {",
		`    const requestUri = new URL("api/items/" + encodeURIComponent(String(id)), this.baseUri);`,
		`    const responseMessage = await this.send("GET", requestUri);`,
		"    await ensureSuccessStatusCode(responseMessage);",
		"    const stream = await responseMessage.text();",
		"    const jsonReader = JSON.parse(stream) as unknown;",
		"    return jsonReader as Item;",
	} {
		assert.Contains(t, code, want)
	}
}

func TestRenderPostWithBody(t *testing.T) {

	t.Parallel()

	op := &model.Operation{
		Name:       "CreateItem",
		HTTPMethod: "POST",
		Route:      "api/items",
		Params:     []*model.Parameter{{Name: "item", Type: itemType, Binding: model.BindingFromBody}},
		Returns:    intType,
	}
	code := render(t, "./types", emit(t, op, emitter.Async))

	for _, want := range []string{
		`import type { Item } from "./types";`,
		"async createItemAsync(item: Item): Promise<number> {",
		"const content = JSON.stringify(item);",
		`const responseMessage = await this.send("POST", requestUri, content, "application/json;charset=UTF-8");`,
		"return Number(readJSONString(jsonReader));",
	} {
		assert.Contains(t, code, want)
	}
	assert.NotContains(t, code, "Record<string, unknown>;")
}

func TestRenderOptionalQuery(t *testing.T) {

	t.Parallel()

	op := &model.Operation{
		Name:       "Search",
		HTTPMethod: "GET",
		Route:      "api/search",
		Params:     []*model.Parameter{{Name: "limit", Type: &model.TypeRef{Kind: model.TypeKindInt32, Nullable: true}}},
		Returns:    &model.TypeRef{Kind: model.TypeKindBool},
	}
	code := render(t, "", emit(t, op, emitter.Async))

	assert.Contains(t, code, "async searchAsync(limit: number | null): Promise<boolean> {")
	assert.Contains(t, code, `new URL("api/search?limit=" + (limit == null ? "" : encodeURIComponent(String(limit))), this.baseUri)`)
	assert.Contains(t, code, `return readJSONString(jsonReader) === "true";`)
}

func TestRenderVoidAndBlob(t *testing.T) {

	t.Parallel()

	remove := &model.Operation{Name: "DeleteItem", HTTPMethod: "DELETE", Route: "api/items/{id}", Params: []*model.Parameter{{Name: "id", Type: intType}}}
	download := &model.Operation{Name: "Download", HTTPMethod: "GET", Route: "api/file", Returns: &model.TypeRef{Kind: model.TypeKindStream}}
	code := render(t, "", emit(t, remove, emitter.Async), emit(t, download, emitter.Async))

	assert.Contains(t, code, "async deleteItemAsync(id: number): Promise<void> {")
	assert.Contains(t, code, "async downloadAsync(): Promise<Blob> {")
	assert.Contains(t, code, "return await responseMessage.blob();")
}

func TestRenderUnsupportedReturn(t *testing.T) {

	t.Parallel()

	op := &model.Operation{Name: "Price", HTTPMethod: "GET", Route: "api/price", Returns: &model.TypeRef{Kind: model.TypeKindDecimal}}
	code := render(t, "", emit(t, op, emitter.Async))

	assert.Contains(t, code, "return undefined as unknown as number;")
}

func TestRenderRejectsBlocking(t *testing.T) {

	t.Parallel()

	op := &model.Operation{Name: "Ping", HTTPMethod: "GET", Route: "api/ping"}
	_, err := NewClientRenderer("", "").RenderClient([]*ast.Function{emit(t, op, emitter.Blocking)})
	require.ErrorIs(t, err, errBlocking)
}

func TestRenderReservedParam(t *testing.T) {

	t.Parallel()

	op := &model.Operation{
		Name:       "Find",
		HTTPMethod: "GET",
		Route:      "api/find/{class}",
		Params:     []*model.Parameter{{Name: "class", Type: &model.TypeRef{Kind: model.TypeKindString}}},
	}
	code := render(t, "", emit(t, op, emitter.Async))

	assert.Contains(t, code, "async findAsync(className: string): Promise<void> {")
	assert.Contains(t, code, `encodeURIComponent(String(className))`)
}

func TestTranslatorAndMapper(t *testing.T) {

	t.Parallel()

	tr := NewTranslator(map[string]string{"FileResult": "blobresponse"})
	tests := []struct {
		in   *model.TypeRef
		want string
	}{
		{&model.TypeRef{Kind: model.TypeKindDateTime}, "string"},
		{&model.TypeRef{Kind: model.TypeKindUint64}, "number"},
		{&model.TypeRef{Kind: model.TypeKindArray, Args: []*model.TypeRef{{Kind: model.TypeKindInt, Nullable: true}}}, "(number | null)[]"},
		{&model.TypeRef{Kind: model.TypeKindMap, Args: []*model.TypeRef{{Kind: model.TypeKindString}, itemType}}, "Record<string, Item>"},
		{&model.TypeRef{Name: "Paged`1", Kind: model.TypeKindGeneric, GenericDefinition: "Paged`1", Args: []*model.TypeRef{itemType}}, "Paged<Item>"},
		{&model.TypeRef{Name: "FileResult", Kind: model.TypeKindObject}, "blobresponse"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Mapper{}.Render(tr.Translate(tt.in)), tt.in.String())
	}
	assert.Equal(t, "Promise<Response>", Mapper{}.Render(ast.Future(ast.Response())))
}

func TestPlaceholderGenerics(t *testing.T) {

	t.Parallel()

	types := make(map[string]int)
	collectTypes(ast.Named("Paged", ast.Named("Item"), ast.Named("number")), types)
	assert.Equal(t, map[string]int{"Paged": 2, "Item": 0}, types)
	assert.Equal(t, "export type Paged<T1, T2> = Record<string, T1 | T2 | unknown>;\n", placeholderType("Paged", 2).String())
}

func TestRenderNullableReturn(t *testing.T) {

	t.Parallel()

	op := &model.Operation{
		Name:       "GetLimit",
		HTTPMethod: "GET",
		Route:      "api/limit",
		Returns:    &model.TypeRef{Kind: model.TypeKindInt32, Nullable: true},
	}
	code := render(t, "", emit(t, op, emitter.Async))

	assert.Contains(t, code, "async getLimitAsync(): Promise<number | null> {")
	assert.Contains(t, code, "return jsonReader as number | null;")
	assert.NotContains(t, code, "Number(readJSONString(jsonReader))")
}

func TestRenderQueryLiterals(t *testing.T) {

	t.Parallel()

	op := &model.Operation{
		Name:       "Filter",
		HTTPMethod: "GET",
		Route:      "api/items?active=true&kind={kind}",
		Params: []*model.Parameter{
			{Name: "kind", Type: &model.TypeRef{Kind: model.TypeKindString}},
			{Name: "ids", Type: &model.TypeRef{Kind: model.TypeKindArray, Args: []*model.TypeRef{intType}}, Binding: model.BindingFromUri},
		},
	}
	code := render(t, "", emit(t, op, emitter.Async))

	assert.Contains(t, code, `"api/items?active=true&kind=" + encodeURIComponent(String(kind))`)
	assert.Contains(t, code, `"&ids=" + ids.map((item) => encodeURIComponent(String(item))).join("&ids=")`)
	assert.NotContains(t, code, `\u0026`)
}
