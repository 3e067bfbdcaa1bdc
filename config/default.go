// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/viper"
	"github.com/tubefetch/tubefetch/color"
	"github.com/tubefetch/tubefetch/constant"
	"github.com/tubefetch/tubefetch/key"
	"github.com/tubefetch/tubefetch/style"
	"golang.org/x/exp/slices"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Section returns the first segment of the key, e.g. "fetch" for "fetch.host".
func (f *Field) Section() string {
	section, _, _ := strings.Cut(f.Key, ".")
	return section
}

// Source tells where the value in effect comes from: "env", "file" or "default".
func (f *Field) Source() string {
	if _, ok := os.LookupEnv(f.Env()); ok {
		return "env"
	}
	if viper.InConfig(f.Key) {
		return "file"
	}
	return "default"
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.FetchHost, constant.Host, "Host serving watch pages.\nPages are requested as https://<host>/watch?v=<id>")
	register(key.FetchUserAgent, constant.UserAgent, "User-Agent header sent with watch page requests")
	register(key.NetworkFingerprint, false, "Negotiate TLS with a browser fingerprint.\nUseful when plain Go clients are served a consent or bot page")
	register(key.NetworkTimeoutSeconds, 60, "Overall timeout of a single HTTP request, in seconds")
	register(key.DownloadDirectory, "", "Directory to save downloaded streams to.\nEmpty means the platform downloads directory")
	register(key.DownloadOverwrite, false, "Overwrite existing files when downloading")
	register(key.HistorySave, true, "Remember looked up videos")
	register(key.SearchShowSuggestions, true, "Complete video identifiers from history")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

// Sections returns the configuration sections in key order.
func Sections() []string {
	keys := lo.Keys(Default)
	slices.Sort(keys)
	return lo.Uniq(lo.Map(keys, func(k string, _ int) string {
		field := Default[k]
		return field.Section()
	}))
}

// InSection returns the fields of a section sorted by key.
func InSection(section string) []Field {
	fields := lo.Filter(lo.Values(Default), func(f Field, _ int) bool {
		return f.Section() == section
	})
	slices.SortFunc(fields, func(a, b Field) int {
		return strings.Compare(a.Key, b.Key)
	})
	return fields
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
