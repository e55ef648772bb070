package ast

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Language identifies the base language of a source file.
type Language int

const (
	LangJS Language = iota
	LangTS
)

func (l Language) String() string {
	if l == LangTS {
		return "ts"
	}
	return "js"
}

// SourceType describes the dialect of a source file: its base language,
// whether JSX syntax is enabled, and whether the file is a module or a
// classic script. The transform stage uses it to decide which lowerings
// apply and how to report dialect mismatches.
type SourceType struct {
	language Language
	jsx      bool
	module   bool
}

// JS returns the source type for a plain JavaScript module.
func JS() SourceType {
	return SourceType{language: LangJS, module: true}
}

// TS returns the source type for a TypeScript module.
func TS() SourceType {
	return SourceType{language: LangTS, module: true}
}

// WithJSX returns a copy with JSX syntax enabled or disabled.
func (s SourceType) WithJSX(enabled bool) SourceType {
	s.jsx = enabled
	return s
}

// WithModule returns a copy marked as a module or a classic script.
func (s SourceType) WithModule(enabled bool) SourceType {
	s.module = enabled
	return s
}

// Language returns the base language.
func (s SourceType) Language() Language { return s.language }

// IsTypeScript reports whether the file carries type syntax.
func (s SourceType) IsTypeScript() bool { return s.language == LangTS }

// HasJSX reports whether JSX syntax is enabled.
func (s SourceType) HasJSX() bool { return s.jsx }

// IsModule reports whether the file is a module rather than a script.
func (s SourceType) IsModule() bool { return s.module }

// String returns the conventional extension for the source type: "js",
// "jsx", "ts", or "tsx".
func (s SourceType) String() string {
	ext := s.language.String()
	if s.jsx {
		ext += "x"
	}
	return ext
}

// SourceTypeFromFilename derives a source type from a file extension.
// Recognized extensions are js, mjs, cjs, jsx, ts, mts, cts, and tsx.
// Files are treated as modules except for the cjs and cts extensions.
func SourceTypeFromFilename(name string) (SourceType, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch ext {
	case "js", "mjs":
		return JS(), nil
	case "cjs":
		return JS().WithModule(false), nil
	case "jsx":
		return JS().WithJSX(true), nil
	case "ts", "mts":
		return TS(), nil
	case "cts":
		return TS().WithModule(false), nil
	case "tsx":
		return TS().WithJSX(true), nil
	}
	return SourceType{}, fmt.Errorf("unknown file extension: %q", name)
}
