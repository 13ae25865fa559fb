package ui_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/arthur-debert/linkfix/pkg/errors"
	"github.com/arthur-debert/linkfix/pkg/ownership"
	"github.com/arthur-debert/linkfix/pkg/symlinks"
	"github.com/arthur-debert/linkfix/pkg/ui"
	"github.com/arthur-debert/linkfix/pkg/ui/terminal"
	"github.com/arthur-debert/linkfix/pkg/ui/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResult(dryRun bool) *symlinks.Result {
	native := symlinks.Record{Symlink: `C:\apps\cfg`, Target: `C:\apps\cfg`}
	fixed := symlinks.Record{Symlink: `C:\apps\data`, Target: `D:\data`}
	res := &symlinks.Result{
		Directory:    `C:\apps`,
		EmulationDir: "/cygdrive/c/apps",
		Discovery:    "two-stream",
		DryRun:       dryRun,
		Records:      []symlinks.Record{native, fixed},
		Skipped:      []symlinks.Record{native},
	}
	if !dryRun {
		res.Relinked = []symlinks.Record{fixed}
	}
	return res
}

func sampleReport() ownership.Report {
	return ownership.Report{
		Path:   `C:\ProgramData\ssh`,
		Exists: true,
		Owner:  `HOST\sshd`,
		ACEs: []ownership.ACE{
			{Principal: `HOST\sshd`, Rights: ownership.AllRights.String(), Type: "Allow", Inheritance: "CI|OI"},
			{Principal: `BUILTIN\Users`, Rights: "Read", Type: "Allow", Inherited: true},
		},
	}
}

func TestNewRenderer(t *testing.T) {
	var buf bytes.Buffer

	r, err := ui.NewRenderer(ui.FormatAuto, &buf)
	require.NoError(t, err)
	assert.IsType(t, &text.Renderer{}, r, "non-file writers get plain text")

	r, err = ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)
	assert.IsType(t, &terminal.Renderer{}, r)

	_, err = ui.NewRenderer(ui.Format(42), &buf)
	assert.Error(t, err)
}

func TestTextRenderer(t *testing.T) {
	t.Run("relinked", func(t *testing.T) {
		var buf bytes.Buffer
		r, _ := ui.NewRenderer(ui.FormatText, &buf)
		require.NoError(t, r.RenderResult(sampleResult(false)))

		out := buf.String()
		assert.Contains(t, out, `Directory: C:\apps`)
		assert.Contains(t, out, "Emulation path: /cygdrive/c/apps")
		assert.Contains(t, out, `relinked     C:\apps\data -> D:\data`)
		assert.Contains(t, out, `native       C:\apps\cfg -> C:\apps\cfg`)
		assert.Contains(t, out, "1 symlink(s) relinked, 1 already native.")
		assert.NotContains(t, out, "DRY RUN")
	})

	t.Run("dry run", func(t *testing.T) {
		var buf bytes.Buffer
		r, _ := ui.NewRenderer(ui.FormatText, &buf)
		require.NoError(t, r.RenderResult(sampleResult(true)))

		out := buf.String()
		assert.Contains(t, out, `would relink C:\apps\data -> D:\data`)
		assert.Contains(t, out, "1 symlink(s) would be relinked")
		assert.Contains(t, out, "DRY RUN MODE - No changes were made")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		r, _ := ui.NewRenderer(ui.FormatText, &buf)
		require.NoError(t, r.RenderResult(&symlinks.Result{Directory: "/x", EmulationDir: "/x"}))
		assert.Equal(t, "Directory: /x\nNo symlinks found.\n", buf.String())
	})

	t.Run("report", func(t *testing.T) {
		var buf bytes.Buffer
		r, _ := ui.NewRenderer(ui.FormatText, &buf)
		require.NoError(t, r.RenderResult(sampleReport()))

		out := buf.String()
		assert.Contains(t, out, `Owner: HOST\sshd`)
		assert.Contains(t, out, `Allow HOST\sshd: Read|Write|Delete|Modify|FullControl [CI|OI]`)
		assert.Contains(t, out, `BUILTIN\Users: Read [] (inherited)`)
	})

	t.Run("error", func(t *testing.T) {
		var buf bytes.Buffer
		r, _ := ui.NewRenderer(ui.FormatText, &buf)
		require.NoError(t, r.RenderError(fmt.Errorf("boom")))
		assert.Equal(t, "Error: boom\n", buf.String())
	})
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, _ := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, r.RenderResult(sampleResult(false)))

	out := buf.String()
	for _, want := range []string{`C:\apps`, "Status", `C:\apps\data`, `D:\data`, "relinked", "native", "1 symlink(s) relinked"} {
		assert.Contains(t, out, want)
	}

	buf.Reset()
	require.NoError(t, r.RenderResult(sampleReport()))
	assert.Contains(t, buf.String(), "Principal")
	assert.Contains(t, buf.String(), `BUILTIN\Users`)
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, _ := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, r.RenderResult(sampleResult(false)))

	var decoded symlinks.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleResult(false), decoded)

	buf.Reset()
	err := errors.New(errors.ErrStreamLengthMismatch, "counts differ").WithDetail("directory", `C:\apps`)
	require.NoError(t, r.RenderError(err))

	var errObj map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &errObj))
	assert.Equal(t, "STREAM_LENGTH_MISMATCH", errObj["code"])
	assert.Equal(t, map[string]interface{}{"directory": `C:\apps`}, errObj["details"])
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, _ := ui.NewRenderer(ui.FormatYAML, &buf)
	require.NoError(t, r.RenderResult(sampleReport()))

	var decoded ownership.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleReport(), decoded)

	buf.Reset()
	require.NoError(t, r.RenderMessage("done"))
	assert.Equal(t, "message: done\n", buf.String())
}
