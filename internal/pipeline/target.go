// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package pipeline

import (
	"fmt"
	"path/filepath"

	"clientgen/internal/ast"
	"clientgen/internal/config"
	"clientgen/internal/helper"
	"clientgen/internal/translate"
	goGenerator "clientgen/plugins/client-go/generator"
	"clientgen/plugins/client-go/goimports"
	goRenderer "clientgen/plugins/client-go/renderer"
	tsGenerator "clientgen/plugins/client-ts/generator"
	tsRenderer "clientgen/plugins/client-ts/renderer"
)

// Target — целевой язык: система типов и рендер клиентских функций в файлы.
type Target interface {
	Name() string
	Translator() translate.TypeTranslator
	Mapper() translate.TextMapper
	Render(fns []*ast.Function) ([]helper.File, error)
}

func NewTarget(cfg *config.Config) (Target, error) {

	switch cfg.Target {
	case config.TargetGo:
		return &goTarget{
			translator: goRenderer.NewTranslator(cfg.Client.TypesPackage, cfg.Types),
			opts: goGenerator.Options{
				Package:    cfg.Client.Package,
				ClientName: cfg.Client.Name,
				Module:     cfg.Client.Module,
				GoVersion:  cfg.Client.GoVersion,
				Readme:     cfg.Client.Readme,

				LocalModule: enclosingModule(cfg.Output),
			},
		}, nil
	case config.TargetTS:
		return &tsTarget{
			translator: tsRenderer.NewTranslator(cfg.Types),
			opts: tsGenerator.Options{
				ClientName:  cfg.Client.Name,
				TypesModule: cfg.Client.TypesPackage,
				Readme:      cfg.Client.Readme,
			},
		}, nil
	}
	return nil, fmt.Errorf("unsupported target %q", cfg.Target)
}

// enclosingModule — путь модуля, в который попадает каталог вывода.
func enclosingModule(output string) string {

	if output == "" {
		return ""
	}
	dir, err := filepath.Abs(output)
	if err != nil {
		return ""
	}
	return goimports.ModulePath(dir)
}

type goTarget struct {
	translator *goRenderer.Translator
	opts       goGenerator.Options
}

func (t *goTarget) Name() string { return config.TargetGo }

func (t *goTarget) Translator() translate.TypeTranslator { return t.translator }

func (t *goTarget) Mapper() translate.TextMapper { return goRenderer.Mapper{} }

func (t *goTarget) Render(fns []*ast.Function) ([]helper.File, error) {
	return goGenerator.GenerateClient(fns, t.opts)
}

type tsTarget struct {
	translator *tsRenderer.Translator
	opts       tsGenerator.Options
}

func (t *tsTarget) Name() string { return config.TargetTS }

func (t *tsTarget) Translator() translate.TypeTranslator { return t.translator }

func (t *tsTarget) Mapper() translate.TextMapper { return tsRenderer.Mapper{} }

func (t *tsTarget) Render(fns []*ast.Function) ([]helper.File, error) {
	return tsGenerator.GenerateClient(fns, t.opts)
}
