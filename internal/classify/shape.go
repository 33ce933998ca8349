// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package classify

// Shape — категория возвращаемого типа, определяющая стратегию разбора ответа.
type Shape int

const (
	ShapeVoid Shape = iota
	ShapePrimitive
	ShapeStringLike
	ShapeChar
	ShapeBlob
	ShapeGenericWrapper
	ShapeComplexObject
	ShapePassthrough
)

var shapeNames = map[Shape]string{
	ShapeVoid:           "void",
	ShapePrimitive:      "primitive",
	ShapeStringLike:     "string",
	ShapeChar:           "char",
	ShapeBlob:           "blob",
	ShapeGenericWrapper: "generic-wrapper",
	ShapeComplexObject:  "complex",
	ShapePassthrough:    "passthrough",
}

func (s Shape) String() string {

	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "unknown"
}
