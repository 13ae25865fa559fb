package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/linkfix/pkg/config"
	"github.com/arthur-debert/linkfix/pkg/errors"
	"github.com/arthur-debert/linkfix/pkg/ui/json"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LINKFIX_CONFIG_DIR", "")
}

func TestBind(t *testing.T) {
	var s Settings
	cmd := &cobra.Command{Use: "x", Run: func(*cobra.Command, []string) {}}
	s.Bind(cmd)

	cmd.SetArgs([]string{"-vv", "--dry-run", "--base-dir", `C:\cygwin64`, "-f", "json", "--timeout", "30s"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, 2, s.Verbosity)
	assert.True(t, s.DryRun)
	assert.Equal(t, `C:\cygwin64`, s.BaseDir)
	assert.Equal(t, "json", s.Format)
	assert.Equal(t, 30*time.Second, s.Timeout)
}

func TestLoadConfig(t *testing.T) {
	isolate(t)

	t.Run("defaults", func(t *testing.T) {
		cfg, err := (&Settings{}).LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("flag overrides", func(t *testing.T) {
		cfg, err := (&Settings{BaseDir: "/opt/cygwin", Format: "yaml"}).LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "/opt/cygwin", cfg.Emulation.BaseDir)
		assert.Equal(t, "yaml", cfg.Output.Format)
	})

	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "linkfix.toml")
		require.NoError(t, os.WriteFile(path, []byte("[symlinks]\ndiscovery = \"single-pass\"\n"), 0644))

		cfg, err := (&Settings{ConfigFile: path}).LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, config.DiscoverySinglePass, cfg.Symlinks.Discovery)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := (&Settings{ConfigFile: "/does/not/exist.toml"}).LoadConfig()
		assert.Error(t, err)
	})
}

func TestRenderer(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Format = "json"

	r, err := (&Settings{}).Renderer(cfg, os.Stdout)
	require.NoError(t, err)
	assert.IsType(t, &json.Renderer{}, r)

	cfg.Output.Format = "xml"
	_, err = (&Settings{}).Renderer(cfg, os.Stdout)
	assert.Error(t, err)
}

func TestRenderError(t *testing.T) {
	isolate(t)
	mismatch := errors.New(errors.ErrStreamLengthMismatch, "got 2 symlinks and 1 targets").
		WithDetail("symlinks", []string{"a", "b"}).
		WithDetail("targets", []string{"a"})

	t.Run("yaml", func(t *testing.T) {
		var out bytes.Buffer
		assert.True(t, (&Settings{Format: "yaml"}).RenderError(&out, mismatch))
		assert.Contains(t, out.String(), "code: STREAM_LENGTH_MISMATCH")
		assert.Contains(t, out.String(), "targets:")
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		assert.True(t, (&Settings{Format: "json"}).RenderError(&out, mismatch))
		assert.Contains(t, out.String(), `"code": "STREAM_LENGTH_MISMATCH"`)
	})

	for _, format := range []string{"", "text", "term", "xml"} {
		t.Run("not handled/"+format, func(t *testing.T) {
			var out bytes.Buffer
			assert.False(t, (&Settings{Format: format}).RenderError(&out, mismatch))
			assert.Empty(t, out.String())
		})
	}
}

func TestContext(t *testing.T) {
	ctx, cancel := (&Settings{}).Context(context.Background())
	defer cancel()
	_, ok := ctx.Deadline()
	assert.False(t, ok)

	ctx, cancel = (&Settings{Timeout: time.Minute}).Context(context.Background())
	defer cancel()
	deadline, ok := ctx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}
