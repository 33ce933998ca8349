// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package generator

import (
	"bytes"
	"fmt"
	"log/slog"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	"clientgen/internal/ast"
	"clientgen/internal/helper"
	"clientgen/internal/report"
	"clientgen/plugins/client-go/renderer"
)

const FileReadme = "README.md"

type Options struct {
	Package    string
	ClientName string
	// Module — путь модуля клиента. Пусто: go.mod не создаётся.
	Module    string
	GoVersion string
	Readme    bool
	// LocalModule — модуль, внутри которого окажется клиент. Его импорты группируются отдельно.
	LocalModule string
}

// GenerateClient рендерит Go-клиент в память: файлы клиента, go.mod и README.
func GenerateClient(fns []*ast.Function, opts Options) (files []helper.File, err error) {

	slog.Debug("generating Go client", slog.String("package", opts.Package), slog.Int("functions", len(fns)))

	gen := &generator{
		opts:     opts,
		renderer: renderer.NewClientRenderer(opts.Package, opts.ClientName, opts.localModule()),
	}
	if err = gen.generate(fns); err != nil {
		slog.Error("failed to generate Go client", slog.String("error", err.Error()))
		return nil, err
	}

	slog.Debug("Go client generated successfully", slog.Int("files", len(gen.files)))
	return gen.files, nil
}

func (opts Options) localModule() string {

	if opts.Module != "" {
		return opts.Module
	}
	return opts.LocalModule
}

type generator struct {
	opts     Options
	renderer *renderer.ClientRenderer
	files    []helper.File
}

func (g *generator) generate(fns []*ast.Function) (err error) {

	if err = g.addGoFile(g.renderer.RenderClient()); err != nil {
		return
	}
	var methods renderer.GoFile
	if methods, err = g.renderer.RenderMethods(fns); err != nil {
		return fmt.Errorf("failed to render methods: %w", err)
	}
	if err = g.addGoFile(methods); err != nil {
		return
	}
	if g.opts.Module != "" {
		if err = g.renderGoMod(); err != nil {
			return
		}
	}
	if g.opts.Readme {
		if err = g.renderReadme(fns); err != nil {
			return
		}
	}
	return
}

func (g *generator) addGoFile(srcFile renderer.GoFile) (err error) {

	var data []byte
	if data, err = srcFile.Bytes(); err != nil {
		return fmt.Errorf("failed to render %s: %w", srcFile.Name(), err)
	}
	g.files = append(g.files, helper.File{Path: srcFile.Name(), Content: data})
	return
}

func (g *generator) renderGoMod() (err error) {

	if err = module.CheckImportPath(g.opts.Module); err != nil {
		return fmt.Errorf("invalid module path %q: %w", g.opts.Module, err)
	}
	var modFile *modfile.File
	if modFile, err = modfile.Parse("go.mod", []byte("module "+modfile.AutoQuote(g.opts.Module)+"\n"), nil); err != nil {
		return fmt.Errorf("invalid module path %q: %w", g.opts.Module, err)
	}
	if g.opts.GoVersion != "" {
		if err = modFile.AddGoStmt(g.opts.GoVersion); err != nil {
			return fmt.Errorf("invalid go version %q: %w", g.opts.GoVersion, err)
		}
	}
	var data []byte
	if data, err = modFile.Format(); err != nil {
		return
	}
	g.files = append(g.files, helper.File{Path: "go.mod", Content: data})
	return
}

func (g *generator) renderReadme(fns []*ast.Function) (err error) {

	rows := make([]report.FunctionRow, 0, len(fns))
	for _, fn := range fns {
		returns := renderer.Mapper{}.Render(fn.Returns)
		if returns == "" {
			returns = "error"
		}
		rows = append(rows, report.FunctionRow{
			Function: renderer.MethodName(fn),
			Endpoint: fn.Method + " " + fn.Route,
			Returns:  returns,
		})
	}
	var buf bytes.Buffer
	clientName := g.opts.ClientName
	if clientName == "" {
		clientName = "Client"
	}
	fmt.Fprintf(&buf, "# %s\n\n", clientName)
	fmt.Fprintf(&buf, "```go\ncli := %s.New(\"https://api.example.com\")\n```\n\n", g.opts.Package)
	if err = report.Functions(&buf, rows); err != nil {
		return
	}
	g.files = append(g.files, helper.File{Path: FileReadme, Content: buf.Bytes()})
	return
}
