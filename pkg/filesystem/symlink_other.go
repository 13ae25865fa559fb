//go:build !windows

package filesystem

import (
	"github.com/arthur-debert/linkfix/pkg/errors"
	"github.com/spf13/afero"
)

// symlinkDir creates link pointing at target. POSIX links carry no
// file/directory type, so this is a plain symlink.
func (l *OSLinker) symlinkDir(target, link string) error {
	linker, ok := l.fs.(afero.Linker)
	if !ok {
		return errors.Newf(errors.ErrNotImplemented, "filesystem %s cannot create symlinks", l.fs.Name())
	}
	return linker.SymlinkIfPossible(target, link)
}
