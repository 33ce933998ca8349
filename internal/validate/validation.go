// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package validate

import (
	"fmt"
	"strings"

	"clientgen/internal/model"
)

var knownKinds = map[model.TypeKind]struct{}{
	model.TypeKindString: {}, model.TypeKindChar: {}, model.TypeKindBool: {},
	model.TypeKindInt: {}, model.TypeKindInt8: {}, model.TypeKindInt16: {}, model.TypeKindInt32: {}, model.TypeKindInt64: {},
	model.TypeKindUint: {}, model.TypeKindUint8: {}, model.TypeKindUint16: {}, model.TypeKindUint32: {}, model.TypeKindUint64: {},
	model.TypeKindFloat32: {}, model.TypeKindFloat64: {}, model.TypeKindByte: {},
	model.TypeKindDecimal: {}, model.TypeKindDateTime: {}, model.TypeKindUUID: {},
	model.TypeKindStream: {}, model.TypeKindAny: {},
	model.TypeKindObject: {}, model.TypeKindArray: {}, model.TypeKindMap: {}, model.TypeKindGeneric: {},
}

func ValidateDocument(doc *model.Document) error {

	if doc == nil {
		return fmt.Errorf("document cannot be nil")
	}
	seen := make(map[string]struct{}, len(doc.Operations))
	for i, op := range doc.Operations {
		if op == nil {
			return fmt.Errorf("operation #%d is nil", i+1)
		}
		if _, dup := seen[op.Name]; dup {
			return fmt.Errorf("operation %q is declared more than once", op.Name)
		}
		seen[op.Name] = struct{}{}
	}
	return nil
}

// ValidateOperation проверяет структурную корректность описания.
// HTTP-метод не проверяется: неподдерживаемые методы обрабатывает генератор.
func ValidateOperation(op *model.Operation) error {

	if op == nil {
		return fmt.Errorf("operation cannot be nil")
	}
	if strings.TrimSpace(op.Name) == "" {
		return fmt.Errorf("operation name cannot be empty")
	}
	if strings.TrimSpace(op.HTTPMethod) == "" {
		return fmt.Errorf("operation %q: http method cannot be empty", op.Name)
	}
	names := make(map[string]struct{}, len(op.Params))
	for i, param := range op.Params {
		if param == nil || param.Name == "" {
			return fmt.Errorf("operation %q: parameter #%d has no name", op.Name, i+1)
		}
		key := strings.ToLower(param.Name)
		if _, dup := names[key]; dup {
			return fmt.Errorf("operation %q: parameter %q is declared more than once", op.Name, param.Name)
		}
		names[key] = struct{}{}
		if param.Type == nil {
			return fmt.Errorf("operation %q: parameter %q has no type", op.Name, param.Name)
		}
		if err := validateTypeRef(param.Type, fmt.Sprintf("parameter %q", param.Name)); err != nil {
			return fmt.Errorf("operation %q: %w", op.Name, err)
		}
	}
	if op.Returns != nil {
		if err := validateTypeRef(op.Returns, "result"); err != nil {
			return fmt.Errorf("operation %q: %w", op.Name, err)
		}
	}
	return nil
}

func ValidateOutDir(outDir string) error {

	if outDir == "" {
		return fmt.Errorf("outDir cannot be empty")
	}
	return nil
}

func validateTypeRef(t *model.TypeRef, where string) error {

	if _, ok := knownKinds[t.Kind]; !ok {
		return fmt.Errorf("%s has unknown type kind %q", where, t.Kind)
	}
	switch t.Kind {
	case model.TypeKindArray:
		if len(t.Args) != 1 {
			return fmt.Errorf("%s: array type %q must have exactly one element type", where, t.Name)
		}
	case model.TypeKindMap:
		if len(t.Args) != 2 {
			return fmt.Errorf("%s: map type %q must have key and value types", where, t.Name)
		}
	case model.TypeKindGeneric:
		if len(t.Args) == 0 {
			return fmt.Errorf("%s: generic type %q has no type arguments", where, t.Name)
		}
	}
	for i, arg := range t.Args {
		if arg == nil {
			return fmt.Errorf("%s: type %q argument #%d is nil", where, t.Name, i+1)
		}
		if err := validateTypeRef(arg, fmt.Sprintf("%s.args[%d]", where, i)); err != nil {
			return err
		}
	}
	return nil
}
