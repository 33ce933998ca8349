// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package model

import (
	"strings"
)

type TypeKind string

const (
	TypeKindString   TypeKind = "string"
	TypeKindChar     TypeKind = "char"
	TypeKindBool     TypeKind = "bool"
	TypeKindInt      TypeKind = "int"
	TypeKindInt8     TypeKind = "int8"
	TypeKindInt16    TypeKind = "int16"
	TypeKindInt32    TypeKind = "int32"
	TypeKindInt64    TypeKind = "int64"
	TypeKindUint     TypeKind = "uint"
	TypeKindUint8    TypeKind = "uint8"
	TypeKindUint16   TypeKind = "uint16"
	TypeKindUint32   TypeKind = "uint32"
	TypeKindUint64   TypeKind = "uint64"
	TypeKindFloat32  TypeKind = "float32"
	TypeKindFloat64  TypeKind = "float64"
	TypeKindByte     TypeKind = "byte"
	TypeKindDecimal  TypeKind = "decimal"
	TypeKindDateTime TypeKind = "datetime"
	TypeKindUUID     TypeKind = "uuid"
	TypeKindStream   TypeKind = "stream"
	TypeKindAny      TypeKind = "any"

	TypeKindObject  TypeKind = "object"
	TypeKindArray   TypeKind = "array"
	TypeKindMap     TypeKind = "map"
	TypeKindGeneric TypeKind = "generic"
)

// TypeRef описывает тип исходной системы типов: имя, вид и аргументы обобщения.
// Для массивов Args[0] — элемент, для map — ключ и значение.
type TypeRef struct {
	Name              string     `json:"name" yaml:"name"`
	Kind              TypeKind   `json:"kind" yaml:"kind"`
	Args              []*TypeRef `json:"args,omitempty" yaml:"args,omitempty"`
	GenericDefinition string     `json:"genericDefinition,omitempty" yaml:"genericDefinition,omitempty"`
	Nullable          bool       `json:"nullable,omitempty" yaml:"nullable,omitempty"`
}

func (t *TypeRef) IsPrimitive() bool {

	if t == nil {
		return false
	}
	switch t.Kind {
	case TypeKindBool, TypeKindByte,
		TypeKindInt, TypeKindInt8, TypeKindInt16, TypeKindInt32, TypeKindInt64,
		TypeKindUint, TypeKindUint8, TypeKindUint16, TypeKindUint32, TypeKindUint64,
		TypeKindFloat32, TypeKindFloat64:
		return true
	}
	return false
}

// IsSimple — типы, которые привязываются к строке запроса без явного указания источника.
func (t *TypeRef) IsSimple() bool {

	if t == nil {
		return false
	}
	if t.IsPrimitive() {
		return true
	}
	switch t.Kind {
	case TypeKindString, TypeKindChar, TypeKindDecimal, TypeKindDateTime, TypeKindUUID:
		return true
	}
	return false
}

func (t *TypeRef) IsComplex() bool {

	if t == nil {
		return false
	}
	switch t.Kind {
	case TypeKindObject, TypeKindArray, TypeKindMap, TypeKindGeneric:
		return true
	}
	return false
}

func (t *TypeRef) IsNullable() bool {

	return t != nil && t.Nullable
}

func (t *TypeRef) IsGenericInstance() bool {

	return t != nil && t.GenericDefinition != "" && len(t.Args) > 0
}

func (t *TypeRef) String() string {

	if t == nil {
		return "void"
	}
	name := t.Name
	if name == "" {
		name = string(t.Kind)
	}
	if len(t.Args) == 0 {
		return name
	}
	args := make([]string, 0, len(t.Args))
	for _, arg := range t.Args {
		args = append(args, arg.String())
	}
	return name + "<" + strings.Join(args, ", ") + ">"
}
