// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package helper

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Dump — компактный JSON значения для отладочных логов.
func Dump(v any) string {

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}
