// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package generator

import (
	"bytes"
	"fmt"
	"log/slog"

	"clientgen/internal/ast"
	"clientgen/internal/helper"
	"clientgen/internal/report"
	"clientgen/plugins/client-ts/renderer"
)

const FileReadme = "README.md"

type Options struct {
	ClientName string
	// TypesModule — модуль, из которого импортируются объектные типы.
	TypesModule string
	Readme      bool
}

func GenerateClient(fns []*ast.Function, opts Options) (files []helper.File, err error) {

	slog.Debug("generating TypeScript client", slog.String("client", opts.ClientName), slog.Int("functions", len(fns)))

	gen := &generator{
		opts:     opts,
		renderer: renderer.NewClientRenderer(opts.ClientName, opts.TypesModule),
	}
	if err = gen.generate(fns); err != nil {
		slog.Error("failed to generate TypeScript client", slog.String("error", err.Error()))
		return nil, err
	}

	slog.Debug("TypeScript client generated successfully", slog.Int("files", len(gen.files)))
	return gen.files, nil
}

type generator struct {
	opts     Options
	renderer *renderer.ClientRenderer
	files    []helper.File
}

func (g *generator) generate(fns []*ast.Function) (err error) {

	file, err := g.renderer.RenderClient(fns)
	if err != nil {
		return fmt.Errorf("failed to render client: %w", err)
	}
	g.files = append(g.files, helper.File{Path: renderer.FileClient, Content: file.Bytes()})
	if g.opts.Readme {
		return g.renderReadme(fns)
	}
	return
}

func (g *generator) renderReadme(fns []*ast.Function) (err error) {

	rows := make([]report.FunctionRow, 0, len(fns))
	for _, fn := range fns {
		rows = append(rows, report.FunctionRow{
			Function: renderer.MethodName(fn),
			Endpoint: fn.Method + " " + fn.Route,
			Returns:  renderer.Mapper{}.Render(fn.Returns),
		})
	}
	clientName := g.opts.ClientName
	if clientName == "" {
		clientName = "Client"
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", clientName)
	fmt.Fprintf(&buf, "```ts\nconst client = new %s(\"https://api.example.com\");\n```\n\n", clientName)
	if err = report.Functions(&buf, rows); err != nil {
		return
	}
	g.files = append(g.files, helper.File{Path: FileReadme, Content: buf.Bytes()})
	return
}
