package symlinks

import (
	"strings"

	"github.com/arthur-debert/linkfix/pkg/errors"
)

// Pair joins the marked symlink stream and the target stream by position.
// Streams of different length cannot be paired and produce an
// ErrStreamLengthMismatch error carrying both streams.
func Pair(symlinkList, targetList []string, marker string) ([]Record, error) {
	if len(symlinkList) != len(targetList) {
		return nil, errors.Newf(errors.ErrStreamLengthMismatch,
			"symlink count (%d) doesn't match target count (%d)", len(symlinkList), len(targetList)).
			WithDetail("symlinks", symlinkList).
			WithDetail("targets", targetList)
	}

	records := make([]Record, 0, len(symlinkList))
	for i := range symlinkList {
		records = append(records, Record{
			Symlink: StripMarker(symlinkList[i], marker),
			Target:  targetList[i],
		})
	}
	return records, nil
}

// ParseTuples reads "link<TAB>target" rows from the single-pass pipeline
func ParseTuples(lines []string, marker string) ([]Record, error) {
	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		parts := strings.Split(line, "\t")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, errors.Newf(errors.ErrTranslation, "malformed discovery row %q", line).
				WithDetail("row", line)
		}
		records = append(records, Record{
			Symlink: StripMarker(parts[0], marker),
			Target:  parts[1],
		})
	}
	return records, nil
}

// StripMarker removes the marker suffix from a translated link path
func StripMarker(path, marker string) string {
	if marker == "" {
		return path
	}
	return strings.TrimSuffix(path, marker)
}
