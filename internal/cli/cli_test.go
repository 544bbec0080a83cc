package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/tansive/devpool/internal/devpool/roster"
)

var testRoster = filepath.Join("testdata", "roster.yaml")

func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCmd(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "devpool "+version+"\n", out)

	out, err = executeCmd(t, "version", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, version, gjson.Get(out, "version").String())
}

func TestKindsCmd(t *testing.T) {
	out, err := executeCmd(t, "kinds")
	require.NoError(t, err)
	assert.Equal(t, "Backend\nFrontend\nAndroid\nOther\n", out)

	out, err = executeCmd(t, "kinds", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, int64(4), gjson.Get(out, "#").Int())
	assert.Equal(t, "Other", gjson.Get(out, "3").String())
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := executeCmd(t, "kinds", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestDemoCmd(t *testing.T) {
	out, err := executeCmd(t, "demo")
	require.NoError(t, err)
	assert.Equal(t, `I am backend developer mykim and I code in Java & Kotlin.
I am frontend developer jk and I code in Javascript.
I am Android developer 안드로 and I code in Kotlin.
mykim: Backend(name=mykim)
jk: Frontend(name=jk)
xyz: not found
Other(name=anonymous) was not added to the pool
Other(name=anonymous): code is not implemented for Other developers
`, out)
}

func TestLoadCmd(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, err := executeCmd(t, "load", testRoster)
		require.NoError(t, err)
		assert.Equal(t, "Frontend(name=jk)\nBackend(name=mykim)\nAndroid(name=안드로)\n", out)
	})

	t.Run("json lookups", func(t *testing.T) {
		out, err := executeCmd(t, "load", testRoster, "--get", "mykim", "--get", "xyz", "-o", "json")
		require.NoError(t, err)
		require.True(t, gjson.Valid(out))
		assert.Equal(t, "mykim", gjson.Get(out, "0.name").String())
		assert.True(t, gjson.Get(out, "0.found").Bool())
		assert.Equal(t, "Backend", gjson.Get(out, "0.developer.kind").String())
		assert.Equal(t, "xyz", gjson.Get(out, "1.name").String())
		assert.False(t, gjson.Get(out, "1.found").Bool())
		assert.False(t, gjson.Get(out, "1.developer").Exists())
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := executeCmd(t, "load", testRoster, "-o", "yaml")
		require.NoError(t, err)
		var got []map[string]string
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, []map[string]string{
			{"kind": "Frontend", "name": "jk"},
			{"kind": "Backend", "name": "mykim"},
			{"kind": "Android", "name": "안드로"},
		}, got)
	})

	t.Run("roster from config", func(t *testing.T) {
		abs, err := filepath.Abs(testRoster)
		require.NoError(t, err)
		configFile := filepath.Join(t.TempDir(), "devpool.toml")
		require.NoError(t, os.WriteFile(configFile, []byte(`roster_file = "`+filepath.ToSlash(abs)+`"`), 0644))

		out, err := executeCmd(t, "--config", configFile, "load", "--get", "jk")
		require.NoError(t, err)
		assert.Equal(t, "jk: Frontend(name=jk)\n", out)
	})

	t.Run("no roster", func(t *testing.T) {
		_, err := executeCmd(t, "load")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no roster file given")
	})

	t.Run("missing roster", func(t *testing.T) {
		_, err := executeCmd(t, "load", filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load roster")
		assert.ErrorIs(t, err, roster.ErrRosterRead)
	})
}

func TestErrorText(t *testing.T) {
	writeRoster := func(t *testing.T, doc string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "roster.yaml")
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
		return path
	}

	tests := []struct {
		name string
		path func(t *testing.T) string
		want []string
	}{
		{
			name: "unknown field",
			path: func(t *testing.T) string {
				return writeRoster(t, "version: v1\ndevelopers:\n  - kind: Backend\n    name: mykim\n    team: core\n")
			},
			want: []string{"unable to load roster: invalid roster: ", "team"},
		},
		{
			name: "name is not a string",
			path: func(t *testing.T) string {
				return writeRoster(t, "version: v1\ndevelopers:\n  - kind: Backend\n    name: 007\n")
			},
			want: []string{"invalid roster: ", "/developers/0/name"},
		},
		{
			name: "unknown kind",
			path: func(t *testing.T) string {
				return writeRoster(t, "version: v1\ndevelopers:\n  - kind: Nope\n")
			},
			want: []string{"invalid roster: developers[0]: unknown developer kind: Nope"},
		},
		{
			name: "directory",
			path: func(t *testing.T) string {
				return t.TempDir()
			},
			want: []string{"unable to read roster file", "is a directory"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCmd(t, "load", tt.path(t))
			require.Error(t, err)
			text := errorText(err)
			for _, want := range tt.want {
				assert.Contains(t, text, want)
			}
		})
	}

	t.Run("plain error", func(t *testing.T) {
		_, err := executeCmd(t, "load")
		require.Error(t, err)
		assert.Equal(t, err.Error(), errorText(err))
	})
}

func TestPrintError(t *testing.T) {
	_, err := executeCmd(t, "load", t.TempDir())
	require.Error(t, err)

	var out bytes.Buffer
	require.NoError(t, printError(&out, "json", err))
	require.True(t, gjson.Valid(out.String()))
	assert.Contains(t, gjson.Get(out.String(), "error").String(), "is a directory")

	out.Reset()
	require.NoError(t, printError(&out, "text", err))
	assert.True(t, strings.HasPrefix(out.String(), "Error: unable to load roster: "))
	assert.Contains(t, out.String(), "is a directory")
}

func TestCodeCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr string
	}{
		{
			name: "explicit language",
			args: []string{"code", "mykim", "-r", testRoster, "-l", "Kotlin"},
			want: "I am backend developer mykim and I code in Kotlin.\n",
		},
		{
			name: "default language",
			args: []string{"code", "안드로", "-r", testRoster},
			want: "I am Android developer 안드로 and I code in Go.\n",
		},
		{
			name:    "unknown developer",
			args:    []string{"code", "xyz", "-r", testRoster},
			wantErr: "developer xyz not found",
		},
		{
			name:    "other developer is not pooled",
			args:    []string{"code", "anonymous", "-r", testRoster},
			wantErr: "developer anonymous not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCmd(t, tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	t.Run("json", func(t *testing.T) {
		out, err := executeCmd(t, "code", "mykim", "-r", testRoster, "-l", "Kotlin", "-o", "json")
		require.NoError(t, err)
		require.True(t, gjson.Valid(out))
		assert.Equal(t, "mykim", gjson.Get(out, "name").String())
		assert.Equal(t, "Backend", gjson.Get(out, "kind").String())
		assert.Equal(t, "Kotlin", gjson.Get(out, "language").String())
		assert.Equal(t, "I am backend developer mykim and I code in Kotlin.", gjson.Get(out, "output").String())
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := executeCmd(t, "code", "jk", "-r", testRoster, "-o", "yaml")
		require.NoError(t, err)
		var got map[string]string
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, "I am frontend developer jk and I code in Go.", got["output"])
	})
}
