// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package loader

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"clientgen/internal/model"
	"clientgen/internal/validate"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Files раскрывает шаблоны вида "api/**/*.yaml" в отсортированный список файлов без повторов.
func Files(patterns []string) (files []string, err error) {

	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		var matches []string
		if matches, err = doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly()); err != nil {
			return nil, errors.Wrapf(err, "failed to expand pattern %q", pattern)
		}
		for _, match := range matches {
			if FormatOf(match) == "" {
				continue
			}
			if _, found := seen[match]; !found {
				seen[match] = struct{}{}
				files = append(files, match)
			}
		}
	}
	slices.Sort(files)
	return
}

// FormatOf определяет формат документа по расширению файла.
func FormatOf(path string) string {

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return ""
}

func LoadFile(path string) (doc *model.Document, err error) {

	var data []byte
	if data, err = os.ReadFile(path); err != nil {
		return nil, errors.Wrapf(err, "failed to read %v", path)
	}
	if doc, err = Decode(data, FormatOf(path)); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %v", path)
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	slog.Debug("document loaded", slog.String("path", path), slog.Int("operations", len(doc.Operations)))
	return
}

// Decode разбирает документ. Пустой формат определяется по первому символу.
func Decode(data []byte, format string) (doc *model.Document, err error) {

	if format == "" {
		format = FormatYAML
		if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
			format = FormatJSON
		}
	}
	doc = new(model.Document)
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, doc)
	default:
		return nil, errors.Errorf("unknown document format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(err, "malformed document")
	}
	if err = validate.ValidateDocument(doc); err != nil {
		return nil, err
	}
	return
}

// Load загружает все документы, подходящие под шаблоны.
func Load(patterns []string) (docs []*model.Document, err error) {

	var files []string
	if files, err = Files(patterns); err != nil {
		return
	}
	if len(files) == 0 {
		return nil, errors.Errorf("no descriptor documents match %v", patterns)
	}
	for _, file := range files {
		var doc *model.Document
		if doc, err = LoadFile(file); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return
}
