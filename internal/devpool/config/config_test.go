package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		config  string
		want    ConfigParam
		wantErr bool
	}{
		{
			name: "full config",
			config: `log_level = "debug"
log_format = "json"
roster_file = "/etc/devpool/roster.yaml"
default_language = "Kotlin"`,
			want: ConfigParam{
				LogLevel:        "debug",
				LogFormat:       "json",
				RosterFile:      "/etc/devpool/roster.yaml",
				DefaultLanguage: "Kotlin",
			},
		},
		{
			name:   "partial config keeps defaults",
			config: `roster_file = "roster.yaml"`,
			want: ConfigParam{
				LogLevel:        "info",
				LogFormat:       "console",
				RosterFile:      "roster.yaml",
				DefaultLanguage: "Go",
			},
		},
		{
			name:    "unknown key",
			config:  `server_port = "8194"`,
			wantErr: true,
		},
		{
			name:    "malformed toml",
			config:  `log_level = `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, LoadConfig(""))
			configFile := filepath.Join(tmpDir, DefaultConfigFile)
			require.NoError(t, os.WriteFile(configFile, []byte(tt.config), 0644))

			err := LoadConfig(configFile)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, defaults(), *Config())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *Config())
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	require.NoError(t, LoadConfig(""))
	assert.Equal(t, "info", Config().LogLevel)
	assert.Equal(t, "Go", Config().DefaultLanguage)
	assert.Empty(t, Config().RosterFile)

	err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
