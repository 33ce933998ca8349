// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package body

import (
	"strings"

	"clientgen/internal/diag"
	"clientgen/internal/model"
)

type Options struct {
	// ImplicitComplexBody: параметр сложного типа без явного FromUri считается телом запроса.
	ImplicitComplexBody bool
}

func DefaultOptions() Options {

	return Options{ImplicitComplexBody: true}
}

// Select возвращает параметр тела запроса или nil, если его нет.
// Несколько подходящих параметров — ошибка конфигурации операции.
func Select(op *model.Operation, opts Options) (*model.Parameter, error) {

	var found []*model.Parameter
	for _, param := range op.Params {
		if IsBody(param, opts) {
			found = append(found, param)
		}
	}
	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return found[0], nil
	}
	names := make([]string, 0, len(found))
	for _, param := range found {
		names = append(names, param.Name)
	}
	return nil, &diag.ConfigurationError{Operation: op.Name, Description: strings.Join(names, ", ")}
}

func IsBody(param *model.Parameter, opts Options) bool {

	if param.Binding == model.BindingFromBody {
		return true
	}
	return opts.ImplicitComplexBody && param.Type.IsComplex() && param.Binding != model.BindingFromUri
}
