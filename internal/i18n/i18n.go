// Package i18n localizes API response messages (en/ru/uz).
package i18n

import (
	"encoding/json"
	"fmt"
	"sync"

	"langart/internal/i18n/locales"
	"langart/internal/locale"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	bundle   *i18n.Bundle
	initOnce sync.Once
)

// Init initializes the message bundle. Idempotent; later calls are no-ops.
func Init() error {
	var initErr error
	initOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

		for _, lang := range locale.Langs {
			if err := loadMessages(string(lang)); err != nil {
				initErr = fmt.Errorf("failed to load messages for %s: %w", lang, err)
				return
			}
		}
	})
	return initErr
}

// loadMessages registers the message map for one language.
func loadMessages(lang string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return err
	}
	for id, msg := range getMessages(lang) {
		bundle.AddMessages(tag, &i18n.Message{
			ID:    id,
			Other: msg,
		})
	}
	return nil
}

// GetLocalizer returns a localizer for a language tag.
func GetLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, string(locale.Normalize(lang)))
}

// T translates a message ID.
func T(localizer *i18n.Localizer, msgID string, data ...map[string]any) string {
	config := &i18n.LocalizeConfig{
		MessageID: msgID,
	}
	if len(data) > 0 {
		config.TemplateData = data[0]
	}

	msg, err := localizer.Localize(config)
	if err != nil {
		// Fall back to the message ID when no translation exists
		return msgID
	}

	return msg
}

// getMessages returns the message map for a language.
func getMessages(lang string) map[string]string {
	switch locale.Lang(lang) {
	case locale.LangRU:
		return locales.MessagesRU
	case locale.LangUZ:
		return locales.MessagesUZ
	default:
		return locales.MessagesEN
	}
}
