package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var i18nBundle *i18n.Bundle

// InitI18NBundle loads every yaml message file under the configured i18n
// directory (config key `i18n.dir`, default "i18n").
func InitI18NBundle() error {
	dir := viper.GetString("i18n.dir")
	if dir == "" {
		dir = "i18n"
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		if _, err := bundle.LoadMessageFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}

	i18nBundle = bundle
	return nil
}

// NewLocalizer returns a localizer for the given language preferences,
// falling back to English.
func NewLocalizer(langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(i18nBundle, append(langs, "en")...)
}
