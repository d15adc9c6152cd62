package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/syntax/internal/markdown"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	c, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.Addr)
	assert.False(t, c.Dev)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "Lucido Technology Consulting", c.SiteTitle)
	assert.Equal(t, markdown.DefaultHighlightStyle, c.HighlightStyle)
	assert.Equal(t, "dist", c.ExportDir)
	assert.Empty(t, c.ContentDir)
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "syntax.yaml"), []byte(
		"addr: \":9000\"\nsite_title: From File\nexport_dir: public\n"), 0644))
	t.Setenv("SYNTAX_SITE_TITLE", "From Env")
	t.Setenv("SYNTAX_DEV", "true")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("addr", ":8080", "")
	flags.String("export-dir", "dist", "")
	flags.String("unrelated", "", "")
	require.NoError(t, flags.Parse([]string{"--export-dir", "out"}))

	c, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, ":9000", c.Addr, "unset flag must not override the file")
	assert.Equal(t, "From Env", c.SiteTitle, "env overrides file")
	assert.True(t, c.Dev)
	assert.Equal(t, "out", c.ExportDir, "set flag overrides file")
}

func TestLoadExplicitFile(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("highlight_style: monokai\n"), 0644))

	c, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "monokai", c.HighlightStyle)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{Addr: ":8080", ExportDir: "dist", HighlightStyle: "dracula"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Addr = " " }},
		{"empty export dir", func(c *Config) { c.ExportDir = "" }},
		{"empty highlight style", func(c *Config) { c.HighlightStyle = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}
