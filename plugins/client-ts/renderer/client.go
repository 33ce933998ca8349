// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package renderer

import (
	"fmt"
	"strings"

	"clientgen/internal/ast"
	"clientgen/internal/common"
	"clientgen/internal/translate"
	"clientgen/plugins/client-ts/tsg"
)

const (
	DoNotEdit  = "Code generated by clientgen. DO NOT EDIT."
	FileClient = "client.ts"
)

// ClientRenderer собирает TypeScript-клиент: один класс с асинхронными методами.
// Объектные типы импортируются из typesModule, иначе объявляются заглушками.
type ClientRenderer struct {
	clientName  string
	typesModule string
}

func NewClientRenderer(clientName, typesModule string) *ClientRenderer {

	if clientName == "" {
		clientName = "Client"
	}
	return &ClientRenderer{clientName: clientName, typesModule: typesModule}
}

func (r *ClientRenderer) RenderClient(fns []*ast.Function) (file *tsg.File, err error) {

	file = tsg.NewFile().Comment(DoNotEdit)

	types := make(map[string]int)
	for _, fn := range fns {
		collectFunctionTypes(fn, types)
	}
	if r.typesModule != "" && len(types) > 0 {
		file.ImportType(r.typesModule, common.SortedKeys(types)...)
	} else {
		for _, name := range common.SortedKeys(types) {
			file.Add(placeholderType(name, types[name]))
		}
	}

	file.Add(httpError())
	file.Add(ensureSuccess())
	file.Add(readJSONString())

	class := tsg.NewStatement().Export()
	seen := make(map[string]string, len(fns))
	class.Block("class "+r.clientName, func(g *tsg.Group) {
		r.renderConstructor(g)
		for _, fn := range fns {
			if err != nil {
				return
			}
			name := MethodName(fn)
			if prev, found := seen[name]; found {
				err = fmt.Errorf("method %s of operation %s clashes with operation %s", name, fn.Operation, prev)
				return
			}
			seen[name] = fn.Operation
			g.Line("")
			if err = renderMethod(g, fn); err != nil {
				err = fmt.Errorf("operation %s: %w", fn.Operation, err)
			}
		}
	})
	if err != nil {
		return nil, err
	}
	file.Add(class)
	return
}

func (r *ClientRenderer) renderConstructor(g *tsg.Group) {

	g.Line("private readonly baseUri: string;")
	g.Line("")
	g.Block("constructor(baseUri: string, private readonly init: RequestInit = {})", func(g *tsg.Group) {
		g.Line(`this.baseUri = baseUri.endsWith("/") ? baseUri : baseUri + "/";`)
	})
	g.Line("")
	g.Block("private send(method: string, uri: URL, body?: BodyInit, contentType?: string): Promise<Response>", func(g *tsg.Group) {
		g.Line("const headers = new Headers(this.init.headers);")
		g.Block("if (contentType)", func(g *tsg.Group) {
			g.Line(`headers.set("Content-Type", contentType);`)
		})
		g.Line("return fetch(uri, { ...this.init, method, headers, body });")
	})
}

func placeholderType(name string, arity int) *tsg.Statement {

	stmt := tsg.NewStatement().Export()
	if arity == 0 {
		stmt.Line("type %s = Record<string, unknown>;", name)
		return stmt
	}
	params := make([]string, 0, arity)
	for i := 1; i <= arity; i++ {
		params = append(params, fmt.Sprintf("T%d", i))
	}
	stmt.Line("type %s<%s> = Record<string, %s | unknown>;", name, strings.Join(params, ", "), strings.Join(params, " | "))
	return stmt
}

func httpError() *tsg.Statement {

	stmt := tsg.NewStatement().Export()
	stmt.Block("class HttpError extends Error", func(g *tsg.Group) {
		g.Block("constructor(readonly status: number, readonly statusText: string, readonly body: string)", func(g *tsg.Group) {
			g.Line("super(`unexpected response status ${status} ${statusText}`);")
		})
	})
	return stmt
}

func ensureSuccess() *tsg.Statement {

	stmt := tsg.NewStatement()
	stmt.Block("async function ensureSuccessStatusCode(response: Response): Promise<void>", func(g *tsg.Group) {
		g.Block("if (response.ok)", func(g *tsg.Group) {
			g.Line("return;")
		})
		g.Line("const body = await response.text();")
		g.Line("throw new HttpError(response.status, response.statusText, body);")
	})
	return stmt
}

func readJSONString() *tsg.Statement {

	stmt := tsg.NewStatement()
	stmt.Block("function readJSONString(value: unknown): string", func(g *tsg.Group) {
		g.Block("if (value === null || value === undefined)", func(g *tsg.Group) {
			g.Line(`return "";`)
		})
		g.Block(`if (typeof value === "object")`, func(g *tsg.Group) {
			g.Line(`throw new Error("unexpected json value");`)
		})
		g.Line("return String(value);")
	})
	return stmt
}

func collectFunctionTypes(fn *ast.Function, types map[string]int) {

	for _, param := range fn.Params {
		collectTypes(param.Type, types)
	}
	collectTypes(fn.Returns, types)
	ast.Walk(fn.Body, func(stmt ast.Stmt) bool {
		for _, expr := range ast.StmtExprs(stmt) {
			ast.WalkExpr(expr, func(e ast.Expr) {
				switch x := e.(type) {
				case *ast.Deserialize:
					collectTypes(x.Type, types)
				case *ast.ParsePrimitive:
					collectTypes(x.Type, types)
				}
			})
		}
		return true
	})
}

func collectTypes(t *ast.TypeRef, types map[string]int) {

	if t == nil {
		return
	}
	for _, arg := range t.Args {
		collectTypes(arg, types)
	}
	if t.Kind != ast.TypeNamed || t.Name == "" {
		return
	}
	if _, builtin := builtinTypes[t.Name]; builtin {
		return
	}
	if translate.IsPassthroughSentinel(t.Name) || translate.IsTextSentinel(t.Name) || translate.IsBlobSentinel(t.Name) {
		return
	}
	if arity, found := types[t.Name]; !found || len(t.Args) > arity {
		types[t.Name] = len(t.Args)
	}
}
