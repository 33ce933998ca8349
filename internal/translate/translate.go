// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package translate

import (
	"strings"

	"clientgen/internal/ast"
	"clientgen/internal/model"
)

// Значения TextMapper, по которым классификатор распознаёт особые типы ответа.
const (
	SentinelAny          = "any"
	SentinelVoid         = "void"
	SentinelResponse     = "response"
	SentinelBlobResponse = "blobresponse"
)

// TypeTranslator переводит тип исходной системы в ссылку на тип целевого языка.
type TypeTranslator interface {
	Translate(t *model.TypeRef) *ast.TypeRef
}

// TextMapper печатает тип целевого языка.
type TextMapper interface {
	Render(t *ast.TypeRef) string
}

func normalize(text string) string {

	return strings.ToLower(strings.TrimSpace(text))
}

func IsPassthroughSentinel(text string) bool {

	switch normalize(text) {
	case SentinelAny, SentinelVoid:
		return true
	}
	return false
}

func IsTextSentinel(text string) bool {

	return normalize(text) == SentinelResponse
}

func IsBlobSentinel(text string) bool {

	return normalize(text) == SentinelBlobResponse
}
