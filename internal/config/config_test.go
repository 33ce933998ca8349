// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientgen/internal/emitter"
)

func TestDefaultIsValid(t *testing.T) {

	t.Parallel()

	require.NoError(t, Default().Validate())
}

func TestLoadFile(t *testing.T) {

	t.Parallel()

	path := filepath.Join(t.TempDir(), "clientgen.yaml")
	data := `
input: ["descriptors/*.yaml"]
output: web/src/api
target: ts
style: async
stringAsString: true
client:
  name: ItemsClient
binding:
  implicitComplexBody: false
classifier:
  passthrough: ["Raw"]
types:
  FileResult: blobresponse
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"descriptors/*.yaml"}, cfg.Input)
	assert.Equal(t, TargetTS, cfg.Target)
	assert.Equal(t, "ItemsClient", cfg.Client.Name)
	assert.Equal(t, "client", cfg.Client.Package)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Client.Readme)
	// viper приводит ключи к нижнему регистру
	assert.Equal(t, "blobresponse", cfg.Types["fileresult"])

	opts := cfg.EmitterOptions()
	assert.True(t, opts.StringAsString)
	assert.False(t, opts.Body.ImplicitComplexBody)
	assert.Equal(t, []string{"Raw"}, opts.Classifier.Passthrough)
	assert.Equal(t, emitter.DefaultContentType, opts.ContentType)

	styles, err := cfg.Styles()
	require.NoError(t, err)
	assert.Equal(t, []emitter.CallStyle{emitter.Async}, styles)
}

func TestLoadMissingFile(t *testing.T) {

	t.Parallel()

	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {

	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "target", mutate: func(c *Config) { c.Target = "java" }, field: "target"},
		{name: "style", mutate: func(c *Config) { c.Style = "threads" }, field: "style"},
		{name: "ts sync", mutate: func(c *Config) { c.Target = TargetTS; c.Style = "sync" }, field: "style"},
		{name: "content type", mutate: func(c *Config) { c.ContentType = "text/xml" }, field: "contentType"},
		{name: "workers", mutate: func(c *Config) { c.Workers = 0 }, field: "workers"},
		{name: "input", mutate: func(c *Config) { c.Input = nil }, field: "input"},
		{name: "package", mutate: func(c *Config) { c.Client.Package = "" }, field: "client.package"},
		{name: "log level", mutate: func(c *Config) { c.Log.Level = "trace" }, field: "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			var errs ValidationErrors
			require.ErrorAs(t, err, &errs)
			fields := make([]string, 0, len(errs))
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}
