package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const DefaultConfigFile = "devpool.toml"

type ConfigParam struct {
	LogLevel        string `toml:"log_level"`
	LogFormat       string `toml:"log_format"`
	RosterFile      string `toml:"roster_file"`
	DefaultLanguage string `toml:"default_language"`
}

var cfg *ConfigParam

func Config() *ConfigParam {
	return cfg
}

func defaults() ConfigParam {
	return ConfigParam{
		LogLevel:        "info",
		LogFormat:       "console",
		DefaultLanguage: "Go",
	}
}

// LoadConfig loads the configuration file. An empty filename installs the
// defaults. Keys missing from the file keep their default value.
func LoadConfig(filename string) error {
	cp := defaults()
	if filename == "" {
		cfg = &cp
		return nil
	}
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	md, err := toml.Decode(string(content), &cp)
	if err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config key: %s", undecoded[0].String())
	}
	cfg = &cp
	return nil
}

func init() {
	if err := LoadConfig(""); err != nil {
		panic(err)
	}
}
