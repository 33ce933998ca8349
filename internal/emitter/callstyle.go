// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package emitter

import (
	"fmt"
	"strings"

	"clientgen/internal/ast"
	"clientgen/internal/decode"
)

const asyncSuffix = "Async"

// CallStyle — стратегия, отличающая блокирующую функцию от асинхронной.
// Всё остальное построение функции у стилей общее.
type CallStyle interface {
	decode.Suspender
	Name() string
	FunctionName(name string) string
	WrapReturn(t *ast.TypeRef) *ast.TypeRef
}

var (
	Blocking CallStyle = blockingStyle{}
	Async    CallStyle = asyncStyle{}
)

type blockingStyle struct{}

func (blockingStyle) Name() string { return "sync" }

func (blockingStyle) FunctionName(name string) string { return strings.TrimSuffix(name, asyncSuffix) }

func (blockingStyle) Suspend(x ast.Expr) ast.Expr { return &ast.Wait{X: x} }

func (blockingStyle) WrapReturn(t *ast.TypeRef) *ast.TypeRef { return t }

type asyncStyle struct{}

func (asyncStyle) Name() string { return "async" }

func (asyncStyle) FunctionName(name string) string {

	return strings.TrimSuffix(name, asyncSuffix) + asyncSuffix
}

func (asyncStyle) Suspend(x ast.Expr) ast.Expr { return &ast.Await{X: x} }

func (asyncStyle) WrapReturn(t *ast.TypeRef) *ast.TypeRef { return ast.Future(t) }

// Styles разбирает значение настройки style: sync, async или both.
func Styles(name string) ([]CallStyle, error) {

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sync", "blocking":
		return []CallStyle{Blocking}, nil
	case "async":
		return []CallStyle{Async}, nil
	case "both":
		return []CallStyle{Blocking, Async}, nil
	}
	return nil, fmt.Errorf("unknown call style %q", name)
}
