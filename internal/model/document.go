// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package model

// Document — набор операций одного API, как он поступает на вход генератору.
type Document struct {
	Version    string       `json:"version,omitempty" yaml:"version,omitempty"`
	Name       string       `json:"name,omitempty" yaml:"name,omitempty"`
	Operations []*Operation `json:"operations" yaml:"operations"`
}
