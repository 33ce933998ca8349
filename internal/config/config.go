// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"clientgen/internal/body"
	"clientgen/internal/classify"
	"clientgen/internal/content"
	"clientgen/internal/emitter"
)

const (
	TargetGo = "go"
	TargetTS = "ts"

	EnvPrefix = "CLIENTGEN"
)

type Config struct {
	Input          []string         `mapstructure:"input" yaml:"input" json:"input"`
	Output         string           `mapstructure:"output" yaml:"output" json:"output"`
	Target         string           `mapstructure:"target" yaml:"target" json:"target"`
	Style          string           `mapstructure:"style" yaml:"style" json:"style"`
	StringAsString bool             `mapstructure:"stringAsString" yaml:"stringAsString" json:"stringAsString"`
	ContentType    string           `mapstructure:"contentType" yaml:"contentType" json:"contentType"`
	Workers        int              `mapstructure:"workers" yaml:"workers" json:"workers"`
	Strict         bool             `mapstructure:"strict" yaml:"strict" json:"strict"`
	Client         ClientConfig     `mapstructure:"client" yaml:"client" json:"client"`
	Classifier     ClassifierConfig `mapstructure:"classifier" yaml:"classifier" json:"classifier"`
	Binding        BindingConfig    `mapstructure:"binding" yaml:"binding" json:"binding"`
	Telemetry      TelemetryConfig  `mapstructure:"telemetry" yaml:"telemetry" json:"telemetry"`
	Serve          ServeConfig      `mapstructure:"serve" yaml:"serve" json:"serve"`
	Watch          WatchConfig      `mapstructure:"watch" yaml:"watch" json:"watch"`
	Log            LogConfig        `mapstructure:"log" yaml:"log" json:"log"`

	// Types переопределяет текст типа целевого языка по имени исходного типа.
	Types map[string]string `mapstructure:"types" yaml:"types" json:"types"`
}

// ClientConfig — имя и пакет генерируемого клиента.
// Module задаёт путь модуля для go.mod рядом с Go-клиентом; пусто — go.mod не создаётся.
// TypesPackage: Go-пакет или TS-модуль с объектными типами API.
type ClientConfig struct {
	Name         string `mapstructure:"name" yaml:"name" json:"name"`
	Package      string `mapstructure:"package" yaml:"package" json:"package"`
	Module       string `mapstructure:"module" yaml:"module" json:"module"`
	GoVersion    string `mapstructure:"goVersion" yaml:"goVersion" json:"goVersion"`
	TypesPackage string `mapstructure:"typesPackage" yaml:"typesPackage" json:"typesPackage"`
	Readme       bool   `mapstructure:"readme" yaml:"readme" json:"readme"`
}

type ClassifierConfig struct {
	Passthrough     []string `mapstructure:"passthrough" yaml:"passthrough" json:"passthrough"`
	GenericWrappers []string `mapstructure:"genericWrappers" yaml:"genericWrappers" json:"genericWrappers"`
}

type BindingConfig struct {
	ImplicitComplexBody bool `mapstructure:"implicitComplexBody" yaml:"implicitComplexBody" json:"implicitComplexBody"`
}

// TelemetryConfig: пустой Endpoint отключает экспорт трасс.
type TelemetryConfig struct {
	Endpoint    string `mapstructure:"endpoint" yaml:"endpoint" json:"endpoint"`
	Insecure    bool   `mapstructure:"insecure" yaml:"insecure" json:"insecure"`
	ServiceName string `mapstructure:"serviceName" yaml:"serviceName" json:"serviceName"`
}

type ServeConfig struct {
	Addr      string `mapstructure:"addr" yaml:"addr" json:"addr"`
	BodyLimit int    `mapstructure:"bodyLimit" yaml:"bodyLimit" json:"bodyLimit"`
}

type WatchConfig struct {
	// Debounce в миллисекундах.
	Debounce int `mapstructure:"debounce" yaml:"debounce" json:"debounce"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

var configFileNames = []string{
	"clientgen.yaml",
	".clientgen.yaml",
	"clientgen.json",
}

var (
	supportedTargets    = []string{TargetGo, TargetTS}
	supportedStyles     = []string{"sync", "async", "both"}
	supportedLogFormats = []string{"text", "json"}
	supportedLogLevels  = []string{"debug", "info", "warn", "error"}
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {

	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {

	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("config validation errors:")
	for _, err := range e {
		sb.WriteString("\n  - " + err.Field + ": " + err.Message)
	}
	return sb.String()
}

func Default() *Config {

	return &Config{
		Input:       []string{"api/**/*.yaml", "api/**/*.json"},
		Output:      "client",
		Target:      TargetGo,
		Style:       "sync",
		ContentType: content.DefaultContentType,
		Workers:     4,
		Client: ClientConfig{
			Name:      "Client",
			Package:   "client",
			GoVersion: "1.25",
			Readme:    true,
		},
		Classifier: ClassifierConfig{
			Passthrough:     classify.DefaultPassthrough,
			GenericWrappers: classify.DefaultGenericWrappers,
		},
		Binding:   BindingConfig{ImplicitComplexBody: true},
		Telemetry: TelemetryConfig{ServiceName: "clientgen"},
		Serve:     ServeConfig{Addr: ":8080", BodyLimit: 4 << 20},
		Watch:     WatchConfig{Debounce: 300},
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

func setDefaults(v *viper.Viper) {

	def := Default()
	v.SetDefault("input", def.Input)
	v.SetDefault("output", def.Output)
	v.SetDefault("target", def.Target)
	v.SetDefault("style", def.Style)
	v.SetDefault("stringAsString", def.StringAsString)
	v.SetDefault("contentType", def.ContentType)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("strict", def.Strict)
	v.SetDefault("client.name", def.Client.Name)
	v.SetDefault("client.package", def.Client.Package)
	v.SetDefault("client.module", def.Client.Module)
	v.SetDefault("client.goVersion", def.Client.GoVersion)
	v.SetDefault("client.typesPackage", def.Client.TypesPackage)
	v.SetDefault("client.readme", def.Client.Readme)
	v.SetDefault("classifier.passthrough", def.Classifier.Passthrough)
	v.SetDefault("classifier.genericWrappers", def.Classifier.GenericWrappers)
	v.SetDefault("binding.implicitComplexBody", def.Binding.ImplicitComplexBody)
	v.SetDefault("telemetry.endpoint", def.Telemetry.Endpoint)
	v.SetDefault("telemetry.insecure", def.Telemetry.Insecure)
	v.SetDefault("telemetry.serviceName", def.Telemetry.ServiceName)
	v.SetDefault("serve.addr", def.Serve.Addr)
	v.SetDefault("serve.bodyLimit", def.Serve.BodyLimit)
	v.SetDefault("watch.debounce", def.Watch.Debounce)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
}

// New возвращает viper с умолчаниями и переменными окружения CLIENTGEN_*.
// Флаги командной строки привязываются к нему снаружи.
func New() *viper.Viper {

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load читает конфигурацию из configPath или из первого найденного файла по умолчанию.
func Load(v *viper.Viper, configPath string) (*Config, error) {

	if configPath == "" {
		for _, name := range configFileNames {
			if _, err := os.Stat(name); err == nil {
				configPath = name
				break
			}
		}
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {

	var errs ValidationErrors
	if !slices.Contains(supportedTargets, c.Target) {
		errs = append(errs, ValidationError{Field: "target", Message: fmt.Sprintf("unsupported target %q, must be one of: %s", c.Target, strings.Join(supportedTargets, ", "))})
	}
	if !slices.Contains(supportedStyles, c.Style) {
		errs = append(errs, ValidationError{Field: "style", Message: fmt.Sprintf("unsupported style %q, must be one of: %s", c.Style, strings.Join(supportedStyles, ", "))})
	}
	if c.Target == TargetTS && c.Style != "async" {
		errs = append(errs, ValidationError{Field: "style", Message: "typescript clients support only the async style"})
	}
	if err := content.Validate(c.ContentType); err != nil {
		errs = append(errs, ValidationError{Field: "contentType", Message: err.Error()})
	}
	if c.Output == "" {
		errs = append(errs, ValidationError{Field: "output", Message: "output is required"})
	}
	if len(c.Input) == 0 {
		errs = append(errs, ValidationError{Field: "input", Message: "at least one input pattern is required"})
	}
	if c.Workers < 1 {
		errs = append(errs, ValidationError{Field: "workers", Message: "workers must be positive"})
	}
	if c.Client.Name == "" {
		errs = append(errs, ValidationError{Field: "client.name", Message: "client name is required"})
	}
	if c.Target == TargetGo && c.Client.Package == "" {
		errs = append(errs, ValidationError{Field: "client.package", Message: "package name is required for go clients"})
	}
	if c.Watch.Debounce < 0 {
		errs = append(errs, ValidationError{Field: "watch.debounce", Message: "debounce must be non-negative"})
	}
	if !slices.Contains(supportedLogLevels, c.Log.Level) {
		errs = append(errs, ValidationError{Field: "log.level", Message: fmt.Sprintf("unsupported level %q", c.Log.Level)})
	}
	if !slices.Contains(supportedLogFormats, c.Log.Format) {
		errs = append(errs, ValidationError{Field: "log.format", Message: fmt.Sprintf("unsupported format %q", c.Log.Format)})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmitterOptions переводит настройки в параметры генератора функций.
func (c *Config) EmitterOptions() emitter.Options {

	return emitter.Options{
		ContentType:    c.ContentType,
		StringAsString: c.StringAsString,
		Body:           body.Options{ImplicitComplexBody: c.Binding.ImplicitComplexBody},
		Classifier: classify.Options{
			Passthrough:     c.Classifier.Passthrough,
			GenericWrappers: c.Classifier.GenericWrappers,
		},
	}
}

func (c *Config) Styles() ([]emitter.CallStyle, error) {

	return emitter.Styles(c.Style)
}
