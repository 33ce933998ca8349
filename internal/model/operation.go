// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package model

import (
	"strings"
)

type Binding string

const (
	BindingNone     Binding = ""
	BindingFromUri  Binding = "FromUri"
	BindingFromBody Binding = "FromBody"
	BindingFromForm Binding = "FromForm"
)

const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
)

// Operation — описание одного метода API, из которого генерируется клиентская функция.
// Создаётся внешним экстрактором и дальше не изменяется.
type Operation struct {
	Name       string       `json:"name" yaml:"name"`
	HTTPMethod string       `json:"httpMethod" yaml:"httpMethod"`
	Route      string       `json:"route" yaml:"route"`
	Params     []*Parameter `json:"params,omitempty" yaml:"params,omitempty"`
	Returns    *TypeRef     `json:"returns,omitempty" yaml:"returns,omitempty"`
	Docs       []string     `json:"docs,omitempty" yaml:"docs,omitempty"`
	ReturnDocs string       `json:"returnDocs,omitempty" yaml:"returnDocs,omitempty"`
}

type Parameter struct {
	Name    string   `json:"name" yaml:"name"`
	Type    *TypeRef `json:"type" yaml:"type"`
	Binding Binding  `json:"binding,omitempty" yaml:"binding,omitempty"`
	Docs    string   `json:"docs,omitempty" yaml:"docs,omitempty"`
}

// Method возвращает HTTP-метод в верхнем регистре.
func (op *Operation) Method() string {

	return strings.ToUpper(strings.TrimSpace(op.HTTPMethod))
}

func (op *Operation) Param(name string) *Parameter {

	for _, param := range op.Params {
		if param.Name == name {
			return param
		}
	}
	return nil
}

func ParseBinding(s string) Binding {

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fromuri", "uri", "query", "path":
		return BindingFromUri
	case "frombody", "body":
		return BindingFromBody
	case "fromform", "form":
		return BindingFromForm
	}
	return BindingNone
}

func (b *Binding) UnmarshalText(text []byte) error {

	*b = ParseBinding(string(text))
	return nil
}
