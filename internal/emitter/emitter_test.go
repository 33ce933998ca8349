// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package emitter

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientgen/internal/ast"
	"clientgen/internal/diag"
	"clientgen/internal/model"
)

type testTranslator struct{}

func (testTranslator) Translate(t *model.TypeRef) *ast.TypeRef {

	if t.Kind == model.TypeKindArray && len(t.Args) > 0 {
		return ast.SliceOf(testTranslator{}.Translate(t.Args[0]))
	}
	return ast.Named(t.Name)
}

type testMapper struct{}

func (testMapper) Render(t *ast.TypeRef) string {

	if t.Name == "Raw" {
		return "any"
	}
	return t.String()
}

func newEmitter(opts Options) *Emitter {

	return New(testTranslator{}, testMapper{}, opts)
}

var (
	itemType   = &model.TypeRef{Name: "Item", Kind: model.TypeKindObject}
	intType    = &model.TypeRef{Name: "int", Kind: model.TypeKindInt32}
	stringType = &model.TypeRef{Name: "string", Kind: model.TypeKindString}
)

func bodyText(fn *ast.Function) string {

	lines := make([]string, 0, len(fn.Body))
	for _, stmt := range fn.Body {
		lines = append(lines, stmt.String())
	}
	return strings.Join(lines, "\n")
}

func countKind(fn *ast.Function, kind ast.ExprKind) (n int) {

	ast.Walk(fn.Body, func(stmt ast.Stmt) bool {
		for _, expr := range ast.StmtExprs(stmt) {
			ast.WalkExpr(expr, func(e ast.Expr) {
				if e.Kind() == kind {
					n++
				}
			})
		}
		return true
	})
	return
}

func TestEmitGetComplex(t *testing.T) {

	t.Parallel()

	op := &model.Operation{
		Name:       "GetItem",
		HTTPMethod: "GET",
		Route:      "/api/items/{id}",
		Params:     []*model.Parameter{{Name: "id", Type: intType, Binding: model.BindingFromUri}},
		Returns:    itemType,
	}
	out, err := newEmitter(DefaultOptions()).Emit(op, Blocking)
	require.NoError(t, err)
	require.NotNil(t, out.Function)
	assert.Empty(t, out.Diagnostics)

	fn := out.Function
	assert.Equal(t, "GetItem", fn.Name)
	assert.Equal(t, []ast.Param{{Name: "id", Type: ast.Named("int")}}, fn.Params)
	assert.Equal(t, "Item", fn.Returns.String())

	want := strings.Join([]string{
		`var requestUri = new Uri(baseUri, "/api/items/"+escapePath(id));`,
		`var responseMessage = send(GET, requestUri).Result;`,
		`responseMessage.EnsureSuccessStatusCode();`,
		`using (var stream = responseMessage.readStream().Result) { using (var jsonReader = new JsonReader(stream)) { return deserialize<Item>(jsonReader); } }`,
	}, "\n")
	if diff := cmp.Diff(want, bodyText(fn)); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestEmitPostImplicitBody(t *testing.T) {

	t.Parallel()

	op := &model.Operation{
		Name:       "CreateItem",
		HTTPMethod: "POST",
		Route:      "/api/items",
		Params:     []*model.Parameter{{Name: "item", Type: itemType}},
	}
	out, err := newEmitter(DefaultOptions()).Emit(op, Blocking)
	require.NoError(t, err)
	fn := out.Function
	require.NotNil(t, fn)
	assert.True(t, fn.Returns.IsVoid())
	assert.Equal(t, 1, countKind(fn, ast.KindSerialize))
	assert.Equal(t, 0, countKind(fn, ast.KindReadStream))

	want := strings.Join([]string{
		`var requestUri = new Uri(baseUri, "/api/items");`,
		`using (var content = serializeJSON(item)) { var responseMessage = send(POST, requestUri, content, "application/json;charset=UTF-8").Result; responseMessage.EnsureSuccessStatusCode(); }`,
	}, "\n")
	assert.Equal(t, want, bodyText(fn))
}

func TestEmitPostWithoutBody(t *testing.T) {

	t.Parallel()

	op := &model.Operation{Name: "Touch", HTTPMethod: "PUT", Route: "api/touch"}
	out, err := newEmitter(DefaultOptions()).Emit(op, Async)
	require.NoError(t, err)
	assert.Contains(t, bodyText(out.Function), `await send(PUT, requestUri, emptyContent(), "application/json;charset=UTF-8")`)
	assert.Equal(t, 0, countKind(out.Function, ast.KindSerialize))
}

func TestEmitStringAsString(t *testing.T) {

	t.Parallel()

	op := &model.Operation{Name: "GetName", HTTPMethod: "GET", Route: "api/name", Returns: stringType}
	opts := DefaultOptions()
	opts.StringAsString = true
	out, err := newEmitter(opts).Emit(op, Blocking)
	require.NoError(t, err)
	fn := out.Function
	assert.Equal(t, 0, countKind(fn, ast.KindJSONReader))
	assert.Equal(t, 1, countKind(fn, ast.KindReadToEnd))
	assert.Equal(t, ast.TypeText, fn.Returns.Kind)
}

func TestEmitPassthrough(t *testing.T) {

	t.Parallel()

	for _, name := range []string{"System.Net.Http.HttpResponseMessage", "Raw"} {
		op := &model.Operation{Name: "Download", HTTPMethod: "GET", Route: "api/raw", Returns: &model.TypeRef{Name: name, Kind: model.TypeKindObject}}
		out, err := newEmitter(DefaultOptions()).Emit(op, Async)
		require.NoError(t, err)
		fn := out.Function
		assert.Equal(t, 0, countKind(fn, ast.KindReadStream), name)
		last := fn.Body[len(fn.Body)-1]
		assert.Equal(t, "return responseMessage;", last.String(), name)
		assert.Equal(t, "Future<Response>", fn.Returns.String(), name)
	}
}

func TestEmitUnsupportedMethod(t *testing.T) {

	t.Parallel()

	op := &model.Operation{Name: "PatchItem", HTTPMethod: "PATCH", Route: "api/items"}
	out, err := newEmitter(DefaultOptions()).Emit(op, Blocking)
	require.NoError(t, err)
	assert.Nil(t, out.Function)
	require.Len(t, out.Diagnostics, 1)
	assert.Equal(t, diag.CodeUnsupportedMethod, out.Diagnostics[0].Code)
	assert.Contains(t, out.Diagnostics[0].Message, "PATCH")
}

func TestEmitMultipleBody(t *testing.T) {

	t.Parallel()

	op := &model.Operation{
		Name:       "Upload",
		HTTPMethod: "POST",
		Route:      "api/upload",
		Params: []*model.Parameter{
			{Name: "a", Type: itemType},
			{Name: "b", Type: stringType, Binding: model.BindingFromBody},
		},
	}
	out, err := newEmitter(DefaultOptions()).Emit(op, Blocking)
	assert.Nil(t, out.Function)
	var confErr *diag.ConfigurationError
	require.True(t, errors.As(err, &confErr))
	assert.Equal(t, "Upload", confErr.Operation)
}

func TestEmitVoidHasNoDecode(t *testing.T) {

	t.Parallel()

	for _, method := range []string{"GET", "POST", "PUT", "DELETE"} {
		op := &model.Operation{Name: "Ping", HTTPMethod: method, Route: "api/ping"}
		for _, style := range []CallStyle{Blocking, Async} {
			out, err := newEmitter(DefaultOptions()).Emit(op, style)
			require.NoError(t, err)
			fn := out.Function
			assert.True(t, fn.Returns.Result().IsVoid())
			assert.Equal(t, 0, countKind(fn, ast.KindReadStream))
			ast.Walk(fn.Body, func(stmt ast.Stmt) bool {
				_, isReturn := stmt.(*ast.Return)
				assert.False(t, isReturn)
				return true
			})
		}
	}
}

func TestEmitCallStyles(t *testing.T) {

	t.Parallel()

	op := &model.Operation{
		Name:       "GetCountAsync",
		HTTPMethod: "GET",
		Route:      "api/count",
		Params:     []*model.Parameter{{Name: "filter", Type: stringType}},
		Returns:    intType,
	}
	e := newEmitter(DefaultOptions())

	blocking, err := e.Emit(op, Blocking)
	require.NoError(t, err)
	async, err := e.Emit(op, Async)
	require.NoError(t, err)

	assert.Equal(t, "GetCount", blocking.Function.Name)
	assert.Equal(t, "GetCountAsync", async.Function.Name)
	assert.Equal(t, "int", blocking.Function.Returns.String())
	assert.Equal(t, "Future<int>", async.Function.Returns.String())
	assert.Equal(t, 0, countKind(blocking.Function, ast.KindAwait))
	assert.Equal(t, 2, countKind(blocking.Function, ast.KindWait))
	assert.Equal(t, 2, countKind(async.Function, ast.KindAwait))

	normalized := strings.NewReplacer("await send(GET, requestUri)", "send(GET, requestUri).Result",
		"await responseMessage.readStream()", "responseMessage.readStream().Result").Replace(bodyText(async.Function))
	assert.Equal(t, bodyText(blocking.Function), normalized)
	assert.NotContains(t, bodyText(blocking.Function), `+""`)
}

func TestEmitDocs(t *testing.T) {

	t.Parallel()

	op := &model.Operation{
		Name:       "GetItem",
		HTTPMethod: "get",
		Route:      "api/items/{id}",
		Docs:       []string{"Returns an item.", "", "Second line."},
		Params: []*model.Parameter{
			{Name: "id", Type: intType, Docs: "item id"},
			{Name: "verbose", Type: &model.TypeRef{Name: "bool", Kind: model.TypeKindBool}},
		},
		Returns:    itemType,
		ReturnDocs: "the item",
	}
	out, err := newEmitter(DefaultOptions()).Emit(op, Blocking)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Returns an item.",
		"Second line.",
		"GET api/items/{id}",
		"@param id item id",
		"@returns the item",
	}, out.Function.Docs)
}

func TestEmitBindingDiagnostics(t *testing.T) {

	t.Parallel()

	op := &model.Operation{
		Name:       "Find",
		HTTPMethod: "GET",
		Route:      "api/{tenant}/items",
		Params: []*model.Parameter{
			{Name: "filter", Type: itemType},
			{Name: "name", Type: stringType, Binding: model.BindingFromForm},
		},
		Returns: itemType,
	}
	out, err := newEmitter(DefaultOptions()).Emit(op, Blocking)
	require.NoError(t, err)
	require.NotNil(t, out.Function)

	codes := make([]diag.Code, 0, len(out.Diagnostics))
	for _, d := range out.Diagnostics {
		codes = append(codes, d.Code)
	}
	assert.Equal(t, []diag.Code{diag.CodeUnresolvedPlaceholder, diag.CodeUnboundParameter, diag.CodeUnboundParameter}, codes)
}

func TestEmitUnsupportedReturnType(t *testing.T) {

	t.Parallel()

	op := &model.Operation{Name: "Now", HTTPMethod: "GET", Route: "api/now", Returns: &model.TypeRef{Name: "DateTime", Kind: model.TypeKindDateTime}}
	out, err := newEmitter(DefaultOptions()).Emit(op, Blocking)
	require.NoError(t, err)
	require.NotNil(t, out.Function)
	assert.Equal(t, "DateTime", out.Function.Returns.String())
	assert.Len(t, out.Function.Body, 3)
	require.Len(t, out.Diagnostics, 1)
	assert.Equal(t, diag.CodeUnsupportedType, out.Diagnostics[0].Code)
}

func TestEmitConcurrent(t *testing.T) {

	t.Parallel()

	e := newEmitter(DefaultOptions())
	op := &model.Operation{
		Name:       "GetItem",
		HTTPMethod: "GET",
		Route:      "api/items/{id}",
		Params:     []*model.Parameter{{Name: "id", Type: intType}},
		Returns:    itemType,
	}
	first, err := e.Emit(op, Async)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, _ := e.Emit(op, Async)
			results[i] = out.Function.String()
		}()
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, first.Function.String(), got)
	}
}

func TestStyles(t *testing.T) {

	t.Parallel()

	styles, err := Styles("both")
	require.NoError(t, err)
	assert.Equal(t, []CallStyle{Blocking, Async}, styles)

	_, err = Styles("threads")
	assert.Error(t, err)
}
