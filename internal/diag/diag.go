// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package diag

import (
	"fmt"
	"slices"
	"sync"
)

type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityInternal Severity = "internal"
)

type Code string

const (
	CodeUnsupportedMethod     Code = "unsupported-method"
	CodeUnsupportedType       Code = "unsupported-type"
	CodeMultipleBody          Code = "multiple-body"
	CodeInternal              Code = "internal"
	CodeUnboundParameter      Code = "unbound-parameter"
	CodeUnresolvedPlaceholder Code = "unresolved-placeholder"
	CodeInvalidOperation      Code = "invalid-operation"
)

// Diagnostic — замечание генератора, привязанное к операции.
type Diagnostic struct {
	Operation string   `json:"operation"`
	Severity  Severity `json:"severity"`
	Code      Code     `json:"code"`
	Message   string   `json:"message"`
}

func (d Diagnostic) String() string {

	return fmt.Sprintf("%s: %s [%s] %s", d.Operation, d.Severity, d.Code, d.Message)
}

func Warning(operation string, code Code, format string, args ...any) Diagnostic {

	return Diagnostic{Operation: operation, Severity: SeverityWarning, Code: code, Message: fmt.Sprintf(format, args...)}
}

// List — потокобезопасный накопитель диагностик.
type List struct {
	mu    sync.Mutex
	items []Diagnostic
}

func (l *List) Add(items ...Diagnostic) {

	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, items...)
}

func (l *List) Items() []Diagnostic {

	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.items)
}

func (l *List) Len() int {

	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// HasErrors — есть ли диагностики уровня error или internal.
func (l *List) HasErrors() bool {

	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.ContainsFunc(l.items, func(d Diagnostic) bool { return d.Severity != SeverityWarning })
}

// Count считает диагностики по уровням.
func Count(items []Diagnostic) (counts map[Severity]int) {

	counts = make(map[Severity]int)
	for _, item := range items {
		counts[item.Severity]++
	}
	return
}

func Error(operation string, code Code, format string, args ...any) Diagnostic {

	return Diagnostic{Operation: operation, Severity: SeverityError, Code: code, Message: fmt.Sprintf(format, args...)}
}
