//go:build linux

package symlinks_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/linkfix/pkg/config"
	"github.com/arthur-debert/linkfix/pkg/cygpath"
	"github.com/arthur-debert/linkfix/pkg/executor"
	"github.com/arthur-debert/linkfix/pkg/filesystem"
	"github.com/arthur-debert/linkfix/pkg/symlinks"
	"github.com/arthur-debert/linkfix/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCygpath stands in for the real translator: it echoes paths in
// emulation form and, with --windows, resolves unmarked links.
const fakeCygpath = `#!/bin/sh
if [ "$1" = "--windows" ]; then
	case "$2" in
	*.LINUXSYMLINK) printf '%s\n' "$2" ;;
	*) readlink -f "$2" ;;
	esac
else
	printf '%s\n' "$1"
fi
`

func installFakeCygpath(t *testing.T) string {
	t.Helper()
	for _, tool := range []string{"sh", "find", "sort", "xargs", "readlink"} {
		if _, err := exec.LookPath(tool); err != nil {
			t.Skipf("%s not available: %v", tool, err)
		}
	}

	bin := t.TempDir()
	script := filepath.Join(bin, "cygpath")
	require.NoError(t, os.WriteFile(script, []byte(fakeCygpath), 0755))
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
	return script
}

// buildTree creates root/tree with relative links pointing outside it
func buildTree(t *testing.T) (tree string, want map[string]string) {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	tree = testutil.CreateDir(t, root, "tree")
	data := testutil.CreateDir(t, root, "data")
	logs := testutil.CreateDir(t, root, "logs")

	want = map[string]string{
		filepath.Join(tree, "data"):           data,
		filepath.Join(tree, "nested", "logs"): logs,
	}
	testutil.CreateSymlink(t, "../data", filepath.Join(tree, "data"))
	testutil.CreateSymlink(t, "../../logs", filepath.Join(tree, "nested", "logs"))
	return tree, want
}

func TestFixSymlinks_RealPipeline(t *testing.T) {
	script := installFakeCygpath(t)

	for _, discovery := range []string{config.DiscoveryTwoStream, config.DiscoverySinglePass} {
		t.Run(discovery, func(t *testing.T) {
			tree, want := buildTree(t)
			osExec := executor.NewOSExecutor()

			r := symlinks.New(symlinks.Options{
				Executor:   osExec,
				Translator: cygpath.New(osExec, script, ""),
				Linker:     filesystem.NewLinker(filesystem.Options{Staged: true}),
				Shell:      "sh",
				Discovery:  discovery,
			})

			result, err := r.FixSymlinks(context.Background(), tree)
			require.NoError(t, err)
			assert.Equal(t, tree, result.EmulationDir)
			assert.Len(t, result.Relinked, len(want))

			for link, target := range want {
				assert.Equal(t, target, testutil.ReadLink(t, link), "link %s", link)
			}

			entries, err := filepath.Glob(filepath.Join(tree, "*"+filesystem.StagingSuffix))
			require.NoError(t, err)
			assert.Empty(t, entries, "staging links must not be left behind")
		})
	}
}

func TestFixSymlinks_RealPipelineDryRun(t *testing.T) {
	script := installFakeCygpath(t)
	tree, want := buildTree(t)
	osExec := executor.NewOSExecutor()

	r := symlinks.New(symlinks.Options{
		Executor:   osExec,
		Translator: cygpath.New(osExec, script, ""),
		Linker:     filesystem.NewLinker(filesystem.Options{Staged: true}),
		Shell:      "sh",
		DryRun:     true,
	})

	result, err := r.FixSymlinks(context.Background(), tree)
	require.NoError(t, err)
	assert.Len(t, result.Pending(), len(want))

	assert.Equal(t, "../data", testutil.ReadLink(t, filepath.Join(tree, "data")))
	assert.Equal(t, "../../logs", testutil.ReadLink(t, filepath.Join(tree, "nested", "logs")))
}
