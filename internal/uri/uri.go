// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package uri

import (
	"strings"

	"clientgen/internal/ast"
	"clientgen/internal/model"
)

// Result — построенное выражение URI и сведения о привязке параметров.
type Result struct {
	URI        *ast.NewURI
	Path       []string
	Query      []string
	Unresolved []string
}

// Build строит выражение URI из шаблона маршрута. Параметры, не занятые
// подстановками пути, попадают в строку запроса, если IsQuery их допускает.
// Параметр тела в URI не попадает никогда.
func Build(route string, params []*model.Parameter, bodyParam *model.Parameter) (result Result) {

	var parts []ast.Expr
	used := make(map[*model.Parameter]struct{})
	inQuery := false

	rest := route
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			break
		}
		end += open
		literal := rest[:open]
		if strings.Contains(literal, "?") {
			inQuery = true
		}
		parts = append(parts, ast.String(literal))

		name, optional := placeholderName(rest[open+1 : end])
		param := lookup(params, name)
		if param == nil || param == bodyParam {
			result.Unresolved = append(result.Unresolved, name)
			parts = append(parts, ast.String(rest[open:end+1]))
		} else {
			used[param] = struct{}{}
			result.Path = append(result.Path, param.Name)
			parts = append(parts, &ast.Escape{
				Value:    ast.Id(param.Name),
				Query:    inQuery,
				Optional: optional || param.Type.IsNullable(),
			})
		}
		rest = rest[end+1:]
	}
	parts = append(parts, ast.String(rest))
	if strings.Contains(route, "?") {
		inQuery = true
	}

	for _, param := range params {
		if _, found := used[param]; found || param == bodyParam || !IsQuery(param) {
			continue
		}
		sep := "&"
		if !inQuery {
			sep = "?"
			inQuery = true
		}
		result.Query = append(result.Query, param.Name)
		parts = append(parts,
			ast.String(sep+param.Name+"="),
			&ast.Escape{Value: ast.Id(param.Name), Query: true, Optional: param.Type.IsNullable()},
		)
	}

	result.URI = &ast.NewURI{Path: join(parts)}
	return
}

// IsQuery — может ли параметр передаваться в строке запроса.
func IsQuery(param *model.Parameter) bool {

	switch param.Binding {
	case model.BindingFromUri:
		return true
	case model.BindingFromBody, model.BindingFromForm:
		return false
	}
	return param.Type.IsSimple()
}

// join склеивает соседние литералы и убирает пустые, в том числе хвостовой "".
func join(parts []ast.Expr) ast.Expr {

	merged := make([]ast.Expr, 0, len(parts))
	for _, part := range parts {
		lit, isLit := part.(*ast.Lit)
		if isLit && lit.Value == "" {
			continue
		}
		if isLit && len(merged) > 0 {
			if prev, ok := merged[len(merged)-1].(*ast.Lit); ok {
				merged[len(merged)-1] = ast.String(prev.Value + lit.Value)
				continue
			}
		}
		merged = append(merged, part)
	}
	switch len(merged) {
	case 0:
		return ast.String("")
	case 1:
		return merged[0]
	}
	return &ast.Concat{Parts: merged}
}

// placeholderName разбирает {id}, {id:int}, {id?}, {*path}.
func placeholderName(text string) (name string, optional bool) {

	name = strings.TrimSpace(text)
	if strings.HasSuffix(name, "?") {
		optional = true
		name = strings.TrimSuffix(name, "?")
	}
	if idx := strings.IndexByte(name, ':'); idx >= 0 {
		name = name[:idx]
	}
	name = strings.TrimLeft(name, "*")
	return
}

func lookup(params []*model.Parameter, name string) *model.Parameter {

	for _, param := range params {
		if strings.EqualFold(param.Name, name) {
			return param
		}
	}
	return nil
}
