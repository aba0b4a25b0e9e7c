/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package locale provides the ordered list of interface locales handed to the
// page templates, and picks one for an Accept-Language header.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/suparena/grimoire/errors"
)

// DefaultFile is the name of the embedded locale list.
const DefaultFile = "locales.yaml"

// Locale is one (code, display name) pair. Codes use an underscore, as in "en_GB".
type Locale struct {
	Code string `yaml:"code" json:"code"`
	Name string `yaml:"name" json:"name"`
}

// Tag parses the code as a BCP 47 language tag.
func (l Locale) Tag() (language.Tag, error) {
	tag, err := language.Parse(strings.ReplaceAll(l.Code, "_", "-"))
	if err != nil {
		return language.Und, errors.NewValidationError("code", fmt.Sprintf("%q is not a language tag: %v", l.Code, err))
	}
	return tag, nil
}

type localeFile struct {
	Locales []Locale `yaml:"locales"`
}

// List is an ordered locale list.
type List struct {
	locales []Locale
	matcher language.Matcher
}

//go:embed locales.yaml
var embeddedFS embed.FS

var defaultList = mustLoadEmbedded()

func mustLoadEmbedded() *List {
	list, err := LoadFromFS(embeddedFS, DefaultFile)
	if err != nil {
		panic(fmt.Sprintf("locale: load embedded list: %v", err))
	}
	return list
}

// Default returns the embedded locale list.
func Default() *List {
	return defaultList
}

// LoadFromFS loads a locale list from the YAML file name in fsys.
func LoadFromFS(fsys fs.FS, name string) (*List, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read locales %s: %w", name, err)
	}
	return Parse(data)
}

// Parse decodes a YAML locale list. Codes must be unique and parse as
// language tags, and the list must not be empty.
func Parse(data []byte) (*List, error) {
	var file localeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.NewValidationError("", fmt.Sprintf("decode locales: %v", err))
	}
	if len(file.Locales) == 0 {
		return nil, errors.NewValidationError("locales", "at least one locale is required")
	}

	seen := make(map[string]bool, len(file.Locales))
	tags := make([]language.Tag, 0, len(file.Locales))
	for _, l := range file.Locales {
		if strings.TrimSpace(l.Name) == "" {
			return nil, errors.NewValidationError("name", fmt.Sprintf("locale %q has no display name", l.Code))
		}
		if seen[l.Code] {
			return nil, errors.NewAlreadyExistsError("locale", l.Code)
		}
		seen[l.Code] = true

		tag, err := l.Tag()
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return &List{
		locales: file.Locales,
		matcher: language.NewMatcher(tags),
	}, nil
}

// Locales returns the locales in order.
func (l *List) Locales() []Locale {
	out := make([]Locale, len(l.locales))
	copy(out, l.locales)
	return out
}

// Pairs returns the locales as (code, display name) pairs, the shape the page
// templates iterate over.
func (l *List) Pairs() [][2]string {
	out := make([][2]string, len(l.locales))
	for i, loc := range l.locales {
		out[i] = [2]string{loc.Code, loc.Name}
	}
	return out
}

// Lookup returns the locale with the given code.
func (l *List) Lookup(code string) (Locale, error) {
	for _, loc := range l.locales {
		if loc.Code == code {
			return loc, nil
		}
	}
	return Locale{}, errors.NewNotFoundError("locale", code)
}

// Match picks the locale that best fits an Accept-Language header value.
// Unparseable or unmatched headers get the first locale.
func (l *List) Match(acceptLanguage string) Locale {
	return l.MatchOr(acceptLanguage, l.locales[0])
}

// MatchOr is Match with fallback returned for unparseable or unmatched
// headers.
func (l *List) MatchOr(acceptLanguage string, fallback Locale) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	_, index, confidence := l.matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(l.locales) {
		return fallback
	}
	return l.locales[index]
}
