// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderScopes(t *testing.T) {

	t.Parallel()

	fn := NewBuilder("GetItemAsync").
		Operation("GetItem").
		Endpoint("GET", "api/items/{id}").
		Returns(Future(Named("Item"))).
		Param("id", Named("int")).
		Add(&VarDecl{Name: "requestUri", Value: String("api/items")}).
		Open("stream", &ReadStream{Response: Id("responseMessage")}).
		Open("jsonReader", &JSONReader{Stream: Id("stream")}).
		Add(&Return{Value: &Deserialize{Type: Named("Item"), Reader: Id("jsonReader")}}).
		Build()

	assert.Equal(t, "GetItem", fn.Operation)
	assert.Equal(t, "GET", fn.Method)
	assert.True(t, fn.IsAsync())
	assert.Equal(t, "Item", fn.Returns.Result().String())

	require.Len(t, fn.Body, 2)
	outer, ok := fn.Body[1].(*Scope)
	require.True(t, ok)
	require.Len(t, outer.Body, 1)
	inner, ok := outer.Body[0].(*Scope)
	require.True(t, ok)
	require.Len(t, inner.Body, 1)
	assert.Equal(t, KindReturn, inner.Body[0].Kind())

	var kinds []StmtKind
	Walk(fn.Body, func(stmt Stmt) bool {
		kinds = append(kinds, stmt.Kind())
		return true
	})
	assert.Equal(t, []StmtKind{KindVarDecl, KindScope, KindScope, KindReturn}, kinds)
}

func TestBuilderCloseAtRoot(t *testing.T) {

	t.Parallel()

	fn := NewBuilder("Ping").Close().Add(&Return{}).Build()
	assert.True(t, fn.Returns.IsVoid())
	assert.Equal(t, "void Ping() {\n    return;\n}", fn.String())
}

func TestTypeRefString(t *testing.T) {

	t.Parallel()

	tests := []struct {
		name string
		ref  *TypeRef
		want string
	}{
		{name: "nil", ref: nil, want: "void"},
		{name: "generic", ref: Named("Paged", Named("Item")), want: "Paged<Item>"},
		{name: "qualified", ref: Qualified("time", "Time"), want: "time.Time"},
		{name: "slice", ref: SliceOf(Named("int")), want: "[]int"},
		{name: "map", ref: MapOf(Named("string"), Any()), want: "map[string]any"},
		{name: "future", ref: Future(Text()), want: "Future<Text>"},
		{name: "pointer", ref: &TypeRef{Kind: TypeNamed, Name: "int", Pointer: true}, want: "*int"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.ref.String())
		})
	}
}

func TestWalkExpr(t *testing.T) {

	t.Parallel()

	send := &Send{
		Method:  "POST",
		URI:     &NewURI{Path: &Concat{Parts: []Expr{String("api/items/"), &Escape{Value: Id("id")}}}},
		Payload: Id("content"),
	}
	var kinds []ExprKind
	WalkExpr(&Await{X: send}, func(e Expr) { kinds = append(kinds, e.Kind()) })
	assert.Equal(t, []ExprKind{KindAwait, KindSend, KindNewURI, KindConcat, KindLit, KindEscape, KindIdent, KindIdent}, kinds)
}
