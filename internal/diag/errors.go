// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package diag

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrMultipleBody = errors.New("more than one body binding")

// ConfigurationError — ошибка описания операции, при которой функция не строится.
type ConfigurationError struct {
	Operation   string
	Description string
}

func (e *ConfigurationError) Error() string {

	return fmt.Sprintf("This API function %s has more than 1 FromBody bindings in parameters: %s", e.Operation, e.Description)
}

func (e *ConfigurationError) Unwrap() error {

	return ErrMultipleBody
}

// InternalError — нарушение внутренней согласованности генератора.
type InternalError struct {
	Operation string
	Reason    string
}

func (e *InternalError) Error() string {

	return fmt.Sprintf("internal error in %s: %s", e.Operation, e.Reason)
}

// FromError переводит ошибку построения функции в диагностику.
func FromError(operation string, err error) Diagnostic {

	var confErr *ConfigurationError
	if errors.As(err, &confErr) {
		return Diagnostic{Operation: operation, Severity: SeverityError, Code: CodeMultipleBody, Message: confErr.Error()}
	}
	var intErr *InternalError
	if errors.As(err, &intErr) {
		return Diagnostic{Operation: operation, Severity: SeverityInternal, Code: CodeInternal, Message: intErr.Reason}
	}
	return Diagnostic{Operation: operation, Severity: SeverityInternal, Code: CodeInternal, Message: errors.Cause(err).Error()}
}
