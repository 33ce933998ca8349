// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"clientgen/internal/ast"
	"clientgen/internal/batch"
	"clientgen/internal/config"
	"clientgen/internal/diag"
	"clientgen/internal/emitter"
	"clientgen/internal/helper"
	"clientgen/internal/model"
	"clientgen/internal/telemetry"
	"clientgen/internal/validate"
)

// ErrStrict — в строгом режиме среди диагностик есть ошибки.
var ErrStrict = errors.New("generation finished with errors")

type Result struct {
	RunID       string            `json:"runId"`
	Target      string            `json:"target"`
	Functions   []*ast.Function   `json:"-"`
	Files       []helper.File     `json:"files"`
	Diagnostics []diag.Diagnostic `json:"diagnostics"`
	Duration    time.Duration     `json:"duration"`
}

// HasErrors — есть ли диагностики уровня error или internal.
func (r *Result) HasErrors() bool {

	var list diag.List
	list.Add(r.Diagnostics...)
	return list.HasErrors()
}

// Generate строит клиент по документам: функции для каждой операции и файлы целевого языка.
// Некорректный документ пропускается с диагностикой. В строгом режиме ошибки
// диагностик дают ErrStrict вместе с результатом.
func Generate(ctx context.Context, cfg *config.Config, docs []*model.Document) (res *Result, err error) {

	var span trace.Span
	ctx, span = telemetry.Tracer().Start(ctx, "clientgen.pipeline", trace.WithAttributes(
		attribute.String("target", cfg.Target),
		attribute.String("style", cfg.Style),
		attribute.Int("documents", len(docs)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	slog.Debug("pipeline started", slog.String("config", helper.Dump(cfg)))

	var target Target
	if target, err = NewTarget(cfg); err != nil {
		return nil, err
	}
	var styles []emitter.CallStyle
	if styles, err = cfg.Styles(); err != nil {
		return nil, err
	}
	var driver *batch.Driver
	if driver, err = batch.New(emitter.New(target.Translator(), target.Mapper(), cfg.EmitterOptions()), styles, cfg.Workers); err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}

	var diags diag.List
	var ops []*model.Operation
	for _, doc := range docs {
		if verr := validate.ValidateDocument(doc); verr != nil {
			name := "<document>"
			if doc != nil && doc.Name != "" {
				name = doc.Name
			}
			diags.Add(diag.Error(name, diag.CodeInvalidOperation, "%s", verr))
			continue
		}
		ops = append(ops, doc.Operations...)
	}

	var run *batch.Result
	if run, err = driver.Generate(ctx, ops); err != nil {
		return nil, err
	}
	diags.Add(run.Diagnostics...)

	res = &Result{
		RunID:       run.RunID,
		Target:      target.Name(),
		Functions:   run.Functions,
		Diagnostics: diags.Items(),
		Duration:    run.Duration,
	}
	if res.Files, err = target.Render(run.Functions); err != nil {
		return nil, fmt.Errorf("failed to render %s client: %w", target.Name(), err)
	}
	span.SetAttributes(attribute.Int("files", len(res.Files)), attribute.Int("diagnostics", len(res.Diagnostics)))

	if cfg.Strict && diags.HasErrors() {
		return res, ErrStrict
	}
	return
}
