// config/overlay.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type DictionaryFile struct {
	Dictionary []Pair `yaml:"dictionary"`
}

// OverlayDictionary appends the entries of a separate dictionary file, so
// they replace earlier values for the same source phrase.
func OverlayDictionary(cfg *Config, dictPath string) error {
	b, err := os.ReadFile(dictPath)
	if err != nil {
		// Missing dictionary file should not kill startup
		return nil
	}

	var df DictionaryFile
	if err := yaml.Unmarshal(b, &df); err != nil {
		return err
	}

	cfg.Translate.Dictionary = append(cfg.Translate.Dictionary, df.Dictionary...)
	return nil
}
