// Package locales embeds the gettext catalogs used for CLI labels.
package locales

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no language is requested
const DefaultLanguage = "en_GB"

const domain = "default"

//go:embed */LC_MESSAGES/*.po
var catalogs embed.FS

// ErrUnknownLanguage indicates no catalog is embedded for a language.
var ErrUnknownLanguage = errors.New("locales: unknown language")

// Load parses the embedded catalog for lang
func Load(lang string) (*gotext.Po, error) {
	if lang == "" {
		lang = DefaultLanguage
	}
	data, err := catalogs.ReadFile(path.Join(lang, "LC_MESSAGES", domain+".po"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%q: %w", lang, ErrUnknownLanguage)
		}
		return nil, err
	}
	po := gotext.NewPo()
	po.Parse(data)
	return po, nil
}

// Languages lists the embedded catalogs
func Languages() []string {
	entries, err := catalogs.ReadDir(".")
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		if e.IsDir() {
			langs = append(langs, e.Name())
		}
	}
	return langs
}
