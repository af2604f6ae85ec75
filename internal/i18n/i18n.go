// Package i18n loads the embedded message catalogs and builds per-request
// translators from the negotiated request language.
package i18n

import (
	"embed"
	"encoding/json"
	"log"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator resolves a message ID to localized text, interpolating the
// optional template data. Unknown IDs fall back to the ID itself.
type Translator func(messageID string, data map[string]any) string

// Bundle wraps the go-i18n bundle holding every preloaded language.
type Bundle struct {
	bundle *goi18n.Bundle
}

// NewBundle loads the embedded locale files. English is the fallback
// language.
func NewBundle() (*Bundle, error) {
	b := goi18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if _, err := b.LoadMessageFileFS(localeFS, "locales/"+entry.Name()); err != nil {
			return nil, err
		}
	}

	return &Bundle{bundle: b}, nil
}

// MustNewBundle is NewBundle for program start, where a broken embedded
// catalog is unrecoverable.
func MustNewBundle() *Bundle {
	b, err := NewBundle()
	if err != nil {
		log.Fatalf("Failed to load locales: %v", err)
	}
	return b
}

// Translator returns a Translator for the given Accept-Language header value.
// An empty or unrecognized header falls back to English.
func (b *Bundle) Translator(acceptLanguage string) Translator {
	localizer := goi18n.NewLocalizer(b.bundle, acceptLanguage)

	return func(messageID string, data map[string]any) string {
		msg, err := localizer.Localize(&goi18n.LocalizeConfig{
			MessageID:    messageID,
			TemplateData: data,
		})
		if err != nil {
			return messageID
		}
		return msg
	}
}
