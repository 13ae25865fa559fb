package symlinks

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultMarker is appended to link paths before translation
const DefaultMarker = ".LINUXSYMLINK"

// discover lists every link under dir, following links on the way down and
// keeping dangling ones, NUL-delimited and sorted so separate runs agree
// on order.
func discover(dir string) string {
	return fmt.Sprintf("find -L %s -xtype l -print0 | sort -z", shellQuote(dir))
}

// symlinkStreamCommand translates each link's own path; the marker stops
// the translator from resolving the link.
func symlinkStreamCommand(dir, translator, nativeFlag, marker string) string {
	return fmt.Sprintf("%s | xargs -0 -I {} %s %s {}%s", discover(dir), translator, nativeFlag, marker)
}

// targetStreamCommand translates each link path unmarked, which yields
// the resolved target.
func targetStreamCommand(dir, translator, nativeFlag string) string {
	return fmt.Sprintf("%s | xargs -0 -I {} %s %s {}", discover(dir), translator, nativeFlag)
}

// tupleCommand emits "link<TAB>target" per discovered link in one pass
func tupleCommand(dir, translator, nativeFlag, marker string) string {
	script := fmt.Sprintf(`printf "%%s\t%%s\n" "$(%[1]s %[2]s "$1%[3]s")" "$(%[1]s %[2]s "$1")"`,
		translator, nativeFlag, marker)
	return fmt.Sprintf("%s | xargs -0 -I {} sh -c %s _ {}", discover(dir), shellQuote(script))
}

// shellTranslator is the name the translator is invoked by inside the
// emulation shell, where native absolute paths are not usable.
func shellTranslator(binary string) string {
	name := binary
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// shellQuote wraps s in single quotes for a POSIX shell
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// splitLines splits captured output on CR and LF, dropping empty entries
func splitLines(out string) []string {
	return strings.FieldsFunc(out, func(r rune) bool {
		return r == '\r' || r == '\n'
	})
}
