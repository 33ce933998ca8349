// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package classify

import (
	"clientgen/internal/common"
	"clientgen/internal/model"
	"clientgen/internal/translate"
)

var (
	DefaultPassthrough = []string{
		"System.Net.Http.HttpResponseMessage",
		"System.Web.Http.IHttpActionResult",
		"Microsoft.AspNetCore.Mvc.IActionResult",
		"Microsoft.AspNetCore.Mvc.ActionResult",
		"net/http.Response",
	}
	DefaultGenericWrappers = []string{
		"System.Threading.Tasks.Task`1",
	}
)

type Options struct {
	Passthrough     []string
	GenericWrappers []string
}

func DefaultOptions() Options {

	return Options{
		Passthrough:     DefaultPassthrough,
		GenericWrappers: DefaultGenericWrappers,
	}
}

// Classifier определяет Shape возвращаемого типа. Не имеет изменяемого состояния.
type Classifier struct {
	passthrough map[string]struct{}
	wrappers    map[string]struct{}
	translator  translate.TypeTranslator
	mapper      translate.TextMapper
}

// New создаёт классификатор. translator и mapper могут быть nil,
// тогда проверка особых значений целевого типа не выполняется.
func New(opts Options, translator translate.TypeTranslator, mapper translate.TextMapper) *Classifier {

	return &Classifier{
		passthrough: common.StringSet(opts.Passthrough),
		wrappers:    common.StringSet(opts.GenericWrappers),
		translator:  translator,
		mapper:      mapper,
	}
}

// Classify возвращает Shape типа; ok == false для неподдерживаемых типов.
func (c *Classifier) Classify(t *model.TypeRef) (shape Shape, ok bool) {

	if t == nil {
		return ShapeVoid, true
	}
	if _, found := c.passthrough[t.Name]; found {
		return ShapePassthrough, true
	}
	if t.IsGenericInstance() {
		if _, found := c.wrappers[t.GenericDefinition]; found {
			return ShapeGenericWrapper, true
		}
	}
	switch text := c.targetText(t); {
	case translate.IsPassthroughSentinel(text):
		return ShapePassthrough, true
	case translate.IsTextSentinel(text):
		return ShapeStringLike, true
	case translate.IsBlobSentinel(text):
		return ShapeBlob, true
	}
	switch {
	case t.Kind == model.TypeKindStream:
		return ShapeBlob, true
	case t.Kind == model.TypeKindString:
		return ShapeStringLike, true
	case t.Kind == model.TypeKindChar:
		return ShapeChar, true
	case t.IsPrimitive() && t.IsNullable():
		// null в теле ответа разбирается только общим десериализатором
		return ShapeComplexObject, true
	case t.IsPrimitive():
		return ShapePrimitive, true
	case t.IsComplex():
		return ShapeComplexObject, true
	}
	return shape, false
}

// ForcesText — целевой тип требует чтения тела ответа как обычного текста.
func (c *Classifier) ForcesText(t *model.TypeRef) bool {

	return t != nil && translate.IsTextSentinel(c.targetText(t))
}

func (c *Classifier) targetText(t *model.TypeRef) string {

	if c.translator == nil || c.mapper == nil {
		return ""
	}
	target := c.translator.Translate(t)
	if target == nil {
		return ""
	}
	return c.mapper.Render(target)
}
