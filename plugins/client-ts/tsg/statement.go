// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package tsg

import (
	"fmt"
	"strings"
)

const indentUnit = "  "

// Group пишет строки TypeScript с текущим отступом.
type Group struct {
	indent int
	code   *strings.Builder
}

func (g *Group) Line(format string, args ...any) *Group {

	text := format
	if len(args) > 0 {
		text = fmt.Sprintf(format, args...)
	}
	if text == "" {
		g.code.WriteString("\n")
		return g
	}
	g.code.WriteString(strings.Repeat(indentUnit, g.indent) + text + "\n")
	return g
}

func (g *Group) Comment(text string) *Group {

	for _, line := range strings.Split(text, "\n") {
		g.Line("// %s", line)
	}
	return g
}

// Doc пишет JSDoc-блок. Пустой список ничего не пишет.
func (g *Group) Doc(lines ...string) *Group {

	if len(lines) == 0 {
		return g
	}
	g.Line("/**")
	for _, line := range lines {
		g.Line(" * %s", strings.ReplaceAll(line, "*/", "*\\/"))
	}
	return g.Line(" */")
}

// Block пишет "header {", тело с отступом и закрывающую скобку.
func (g *Group) Block(header string, fn func(*Group)) *Group {

	g.Line("%s {", header)
	inner := &Group{indent: g.indent + 1, code: g.code}
	if fn != nil {
		fn(inner)
	}
	return g.Line("}")
}

// Statement — объявление верхнего уровня файла.
type Statement struct {
	Group
	export bool
}

func NewStatement() *Statement {
	return &Statement{Group: Group{code: &strings.Builder{}}}
}

// Export добавляет export к первой строке объявления, не являющейся комментарием.
func (s *Statement) Export() *Statement {
	s.export = true
	return s
}

func (s *Statement) String() string {

	result := s.code.String()
	if !s.export {
		return result
	}
	lines := strings.Split(result, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/**") || strings.HasPrefix(trimmed, "*") {
			continue
		}
		if !strings.HasPrefix(trimmed, "export ") {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			lines[i] = indent + "export " + trimmed
		}
		break
	}
	return strings.Join(lines, "\n")
}
