// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package common

import (
	"strings"
)

// StringSet строит множество из списка имён, пустые пропускаются.
func StringSet(slice []string) (set map[string]struct{}) {

	set = make(map[string]struct{}, len(slice))
	for _, v := range slice {
		if v = strings.TrimSpace(v); v != "" {
			set[v] = struct{}{}
		}
	}
	return
}
