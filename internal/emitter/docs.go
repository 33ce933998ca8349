// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package emitter

import (
	"strings"

	"clientgen/internal/model"
)

const (
	DocParamPrefix   = "@param "
	DocReturnsPrefix = "@returns "
)

// docLines: описание, "VERB route", описания параметров, описание результата.
func docLines(op *model.Operation) (lines []string) {

	for _, line := range op.Docs {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	lines = append(lines, op.Method()+" "+op.Route)
	for _, param := range op.Params {
		if strings.TrimSpace(param.Docs) != "" {
			lines = append(lines, DocParamPrefix+param.Name+" "+param.Docs)
		}
	}
	if strings.TrimSpace(op.ReturnDocs) != "" {
		lines = append(lines, DocReturnsPrefix+op.ReturnDocs)
	}
	return
}
