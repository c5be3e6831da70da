package utils

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const DefaultLanguage = "en"

var bundle = newBundle()

func newBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)
	return b
}

// InitI18NBundle loads every message file under the directory configured by
// `i18n.dir`.
func InitI18NBundle() error {
	dir := viper.GetString("i18n.dir")
	if dir == "" {
		dir = "i18n"
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return err
	}

	b := newBundle()
	for _, f := range files {
		if _, err := b.LoadMessageFile(f); err != nil {
			log.WithField("file", f).WithError(err).Error("fail to load message file")
			return err
		}
	}
	bundle = b

	log.WithField("dir", dir).WithField("files", len(files)).Info("i18n bundle loaded")
	return nil
}

// NormalizeLanguage turns `zh-TW` into `zh_tw` style keys used for caches.
func NormalizeLanguage(lang string) string {
	if lang == "" {
		return DefaultLanguage
	}
	return strings.ReplaceAll(strings.ToLower(lang), "-", "_")
}

func NewLocalizer(lang ...string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang...)
}

// Localize resolves a message and falls back to the given text when the
// message is missing in every requested language.
func Localize(localizer *i18n.Localizer, messageID, fallback string) string {
	s, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      messageID,
		DefaultMessage: &i18n.Message{ID: messageID, Other: fallback},
	})
	if err != nil || s == "" {
		return fallback
	}
	return s
}
