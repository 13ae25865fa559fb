//go:build windows

package filesystem

import (
	"path/filepath"

	"golang.org/x/sys/windows"
)

// SYMBOLIC_LINK_FLAG_ALLOW_UNPRIVILEGED_CREATE, honoured since Windows 10
// 1703 when developer mode is on
const allowUnprivilegedCreate = 0x2

// symlinkDir creates a directory-type link regardless of whether target
// exists, so dangling targets still produce a usable directory link.
func (l *OSLinker) symlinkDir(target, link string) error {
	linkp, err := windows.UTF16PtrFromString(filepath.Clean(link))
	if err != nil {
		return err
	}
	targetp, err := windows.UTF16PtrFromString(filepath.FromSlash(target))
	if err != nil {
		return err
	}

	flags := uint32(windows.SYMBOLIC_LINK_FLAG_DIRECTORY)
	err = windows.CreateSymbolicLink(linkp, targetp, flags|allowUnprivilegedCreate)
	if err == windows.ERROR_INVALID_PARAMETER {
		// older builds reject the unprivileged flag
		err = windows.CreateSymbolicLink(linkp, targetp, flags)
	}
	return err
}
