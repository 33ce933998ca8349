// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package common

import (
	"regexp"
	"strings"
	"unicode"
)

var numberSequence = regexp.MustCompile(`([a-zA-Z])(\d+)([a-zA-Z]?)`)
var numberReplacement = []byte(`$1 $2 $3`)

func toCamelInitCase(s string, initCase bool) string {

	s = string(numberSequence.ReplaceAll([]byte(s), numberReplacement))
	s = strings.Trim(s, " ")
	var n strings.Builder
	capNext := initCase
	for _, v := range s {
		switch {
		case v >= 'A' && v <= 'Z', v >= '0' && v <= '9':
			n.WriteRune(v)
		case v >= 'a' && v <= 'z':
			if capNext {
				n.WriteRune(unicode.ToUpper(v))
			} else {
				n.WriteRune(v)
			}
		}
		capNext = v == '_' || v == ' ' || v == '-' || v == '.'
	}
	return n.String()
}

// ToCamel: get_item -> GetItem, getItem -> GetItem.
func ToCamel(s string) string {

	return toCamelInitCase(s, true)
}

// ToLowerCamel: GetItem -> getItem. Строки целиком в верхнем регистре не меняются.
func ToLowerCamel(s string) string {

	if s == "" || strings.ToUpper(s) == s {
		return s
	}
	if r := rune(s[0]); r >= 'A' && r <= 'Z' {
		s = strings.ToLower(string(r)) + s[1:]
	}
	return toCamelInitCase(s, false)
}

// SafeName заменяет зарезервированные слова целевого языка.
func SafeName(name string, reserved map[string]string) string {

	if safe, ok := reserved[name]; ok {
		return safe
	}
	return name
}
