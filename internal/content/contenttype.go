// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package content

import (
	"fmt"
	"mime"
	"strings"
)

const DefaultContentType = "application/json;charset=UTF-8"

const (
	KindJSON = "json"
	KindForm = "form"
	KindXML  = "xml"
	KindText = "text"
	KindYAML = "yaml"
)

var mimeToKind = map[string]string{
	"application/json":                  KindJSON,
	"text/json":                         KindJSON,
	"application/problem+json":          KindJSON,
	"application/x-www-form-urlencoded": KindForm,
	"application/xml":                   KindXML,
	"text/xml":                          KindXML,
	"text/plain":                        KindText,
	"application/yaml":                  KindYAML,
	"application/x-yaml":                KindYAML,
	"text/yaml":                         KindYAML,
}

var kindToCanonicalMIME = map[string]string{
	KindJSON: "application/json",
	KindForm: "application/x-www-form-urlencoded",
	KindXML:  "application/xml",
	KindText: "text/plain",
	KindYAML: "application/x-yaml",
}

// Kind определяет вид содержимого по MIME, по умолчанию json.
func Kind(contentType string) string {

	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	if k, ok := mimeToKind[mediaType]; ok {
		return k
	}
	return KindJSON
}

func CanonicalMIME(kind string) string {

	if m, ok := kindToCanonicalMIME[kind]; ok {
		return m
	}
	return kindToCanonicalMIME[KindJSON]
}

// Validate проверяет, что тело запроса можно отправить с этим типом содержимого.
// Генерируемые клиенты сериализуют тело только в JSON.
func Validate(contentType string) error {

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("content type %q: %w", contentType, err)
	}
	if kind, known := mimeToKind[mediaType]; (!known || kind != KindJSON) && !strings.HasSuffix(mediaType, "+json") {
		return fmt.Errorf("content type %q: only json request bodies are supported", contentType)
	}
	return nil
}
