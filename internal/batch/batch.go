// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"clientgen/internal/ast"
	"clientgen/internal/diag"
	"clientgen/internal/emitter"
	"clientgen/internal/model"
	"clientgen/internal/telemetry"
	"clientgen/internal/validate"
)

// Result — итог генерации набора операций.
// Functions идут в порядке операций, для каждой операции в порядке стилей.
type Result struct {
	RunID       string
	Functions   []*ast.Function
	Diagnostics []diag.Diagnostic
	Duration    time.Duration
}

type Driver struct {
	emitter   *emitter.Emitter
	styles    []emitter.CallStyle
	workers   int
	tracer    trace.Tracer
	functions metric.Int64Counter
	diags     metric.Int64Counter
}

type opResult struct {
	functions   []*ast.Function
	diagnostics []diag.Diagnostic
}

func New(e *emitter.Emitter, styles []emitter.CallStyle, workers int) (d *Driver, err error) {

	if len(styles) == 0 {
		return nil, fmt.Errorf("at least one call style is required")
	}
	if workers < 1 {
		workers = 1
	}
	d = &Driver{emitter: e, styles: styles, workers: workers, tracer: telemetry.Tracer()}
	meter := telemetry.Meter()
	if d.functions, err = meter.Int64Counter("clientgen.functions", metric.WithDescription("generated client functions")); err != nil {
		return nil, err
	}
	if d.diags, err = meter.Int64Counter("clientgen.diagnostics", metric.WithDescription("generation diagnostics")); err != nil {
		return nil, err
	}
	return
}

// Generate строит функции для всех операций. Ошибка одной операции
// становится диагностикой и не влияет на остальные.
func (d *Driver) Generate(ctx context.Context, ops []*model.Operation) (result *Result, err error) {

	started := time.Now()
	result = &Result{RunID: uuid.NewString()}

	var span trace.Span
	ctx, span = d.tracer.Start(ctx, "clientgen.generate", trace.WithAttributes(
		attribute.String("run.id", result.RunID),
		attribute.Int("operations", len(ops)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	results := make([]opResult, len(ops))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)
	for i, op := range ops {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = d.generateOne(gctx, op)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	for _, res := range results {
		result.Functions = append(result.Functions, res.functions...)
		result.Diagnostics = append(result.Diagnostics, res.diagnostics...)
	}
	result.Duration = time.Since(started)
	slog.Info("generation finished",
		slog.String("runID", result.RunID),
		slog.Int("operations", len(ops)),
		slog.Int("functions", len(result.Functions)),
		slog.Int("diagnostics", len(result.Diagnostics)),
		slog.Duration("duration", result.Duration),
	)
	return
}

func (d *Driver) generateOne(ctx context.Context, op *model.Operation) (res opResult) {

	name := "<nil>"
	if op != nil {
		name = op.Name
	}
	ctx, span := d.tracer.Start(ctx, "clientgen.operation", trace.WithAttributes(attribute.String("operation", name)))
	defer span.End()

	if err := validate.ValidateOperation(op); err != nil {
		res.diagnostics = append(res.diagnostics, diag.Error(name, diag.CodeInvalidOperation, "%s", err))
		d.record(ctx, span, res)
		return
	}
	span.SetAttributes(attribute.String("http.method", op.Method()), attribute.String("http.route", op.Route))

	for _, style := range d.styles {
		out, err := d.emitter.Emit(op, style)
		res.diagnostics = append(res.diagnostics, out.Diagnostics...)
		if err != nil {
			slog.Warn("operation skipped", slog.String("operation", op.Name), slog.String("style", style.Name()), slog.Any("error", err))
			res.diagnostics = append(res.diagnostics, diag.FromError(op.Name, err))
			span.RecordError(err)
			// ошибка конфигурации одинакова для всех стилей
			break
		}
		if out.Function != nil {
			res.functions = append(res.functions, out.Function)
		}
	}
	// одно и то же замечание приходит от каждого стиля
	res.diagnostics = dedup(res.diagnostics)
	d.record(ctx, span, res)
	return
}

func (d *Driver) record(ctx context.Context, span trace.Span, res opResult) {

	d.functions.Add(ctx, int64(len(res.functions)))
	for _, item := range res.diagnostics {
		d.diags.Add(ctx, 1, metric.WithAttributes(
			attribute.String("severity", string(item.Severity)),
			attribute.String("code", string(item.Code)),
		))
		if item.Severity != diag.SeverityWarning {
			span.SetStatus(codes.Error, item.Message)
		}
	}
}

func dedup(items []diag.Diagnostic) []diag.Diagnostic {

	if len(items) < 2 {
		return items
	}
	seen := make(map[diag.Diagnostic]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		if _, found := seen[item]; found {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
