package symlinks_test

import (
	"testing"

	"github.com/arthur-debert/linkfix/pkg/errors"
	"github.com/arthur-debert/linkfix/pkg/symlinks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPair(t *testing.T) {
	t.Run("pairs by position", func(t *testing.T) {
		records, err := symlinks.Pair(
			[]string{`C:\a\l1.LINUXSYMLINK`, `C:\a\l2.LINUXSYMLINK`},
			[]string{`C:\t\1`, `C:\a\l2`},
			symlinks.DefaultMarker,
		)
		require.NoError(t, err)
		assert.Equal(t, []symlinks.Record{
			{Symlink: `C:\a\l1`, Target: `C:\t\1`},
			{Symlink: `C:\a\l2`, Target: `C:\a\l2`},
		}, records)
		assert.True(t, records[0].NeedsRelink())
		assert.False(t, records[1].NeedsRelink())
	})

	t.Run("empty streams", func(t *testing.T) {
		records, err := symlinks.Pair(nil, nil, symlinks.DefaultMarker)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := symlinks.Pair([]string{"a", "b"}, []string{"a"}, symlinks.DefaultMarker)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrStreamLengthMismatch))
		assert.Contains(t, err.Error(), "symlink count (2) doesn't match target count (1)")

		details := errors.GetErrorDetails(err)
		assert.Equal(t, []string{"a", "b"}, details["symlinks"])
		assert.Equal(t, []string{"a"}, details["targets"])
	})
}

func TestParseTuples(t *testing.T) {
	records, err := symlinks.ParseTuples([]string{
		"C:\\a\\l1.LINUXSYMLINK\tC:\\t\\1",
		"C:\\a\\l2.LINUXSYMLINK\tC:\\a\\l2",
	}, symlinks.DefaultMarker)
	require.NoError(t, err)
	assert.Equal(t, []symlinks.Record{
		{Symlink: `C:\a\l1`, Target: `C:\t\1`},
		{Symlink: `C:\a\l2`, Target: `C:\a\l2`},
	}, records)

	for _, bad := range []string{"no-tab", "\tC:\\t", "C:\\l\t", "a\tb\tc"} {
		_, err := symlinks.ParseTuples([]string{bad}, symlinks.DefaultMarker)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTranslation), "row %q", bad)
	}
}

func TestStripMarker(t *testing.T) {
	m := symlinks.DefaultMarker
	assert.Equal(t, `C:\a\link`, symlinks.StripMarker(`C:\a\link`+m, m))
	assert.Equal(t, `C:\a\link`, symlinks.StripMarker(`C:\a\link`, m))
	assert.Equal(t, `C:\x`+m+`\link`, symlinks.StripMarker(`C:\x`+m+`\link`+m, m))
	assert.Equal(t, "path", symlinks.StripMarker("path", ""))
}

func TestResultPending(t *testing.T) {
	r := &symlinks.Result{Records: []symlinks.Record{
		{Symlink: "a", Target: "a"},
		{Symlink: "b", Target: "c"},
	}}
	assert.Equal(t, []symlinks.Record{{Symlink: "b", Target: "c"}}, r.Pending())
}

func TestResultStatus(t *testing.T) {
	native := symlinks.Record{Symlink: "a", Target: "a"}
	done := symlinks.Record{Symlink: "b", Target: "c"}
	left := symlinks.Record{Symlink: "d", Target: "e"}

	r := &symlinks.Result{
		Records:  []symlinks.Record{native, done, left},
		Relinked: []symlinks.Record{done},
		Skipped:  []symlinks.Record{native},
	}
	assert.Equal(t, symlinks.StatusNative, r.Status(native))
	assert.Equal(t, symlinks.StatusRelinked, r.Status(done))
	assert.Equal(t, symlinks.StatusPending, r.Status(left))

	r.DryRun = true
	assert.Equal(t, symlinks.StatusWouldRelink, r.Status(left))
}
