package filesystem

import (
	"os"

	"github.com/arthur-debert/linkfix/pkg/errors"
	"github.com/arthur-debert/linkfix/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// StagingSuffix is appended to a link path to build the temporary path the
// replacement link is created at before being renamed into place.
const StagingSuffix = ".linkfix-tmp"

// Linker replaces an existing filesystem entry with a directory-type
// symbolic link pointing at target.
type Linker interface {
	Replace(link, target string) error
}

// Options configures an OSLinker
type Options struct {
	// FS is used for remove and rename; defaults to afero.NewOsFs()
	FS afero.Fs

	// Staged creates the new link beside the old one and renames it over
	// the original. When false the original is removed first.
	Staged bool

	// Logger defaults to the package's component logger when nil
	Logger *zerolog.Logger
}

// OSLinker replaces links on the host filesystem
type OSLinker struct {
	fs     afero.Fs
	staged bool
	logger zerolog.Logger
}

// NewLinker creates a new OSLinker
func NewLinker(opts Options) *OSLinker {
	fs := opts.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}

	logger := logging.GetLogger("filesystem")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &OSLinker{
		fs:     fs,
		staged: opts.Staged,
		logger: logger,
	}
}

// Replace swaps the entry at link for a directory link to target
func (l *OSLinker) Replace(link, target string) error {
	if link == "" || target == "" {
		return errors.New(errors.ErrInvalidInput, "link and target are required")
	}
	if l.staged {
		return l.replaceStaged(link, target)
	}
	return l.replaceDirect(link, target)
}

// replaceDirect deletes the old entry, then creates the new link. A failure
// on the second step leaves link missing.
func (l *OSLinker) replaceDirect(link, target string) error {
	if err := l.remove(link); err != nil {
		return errors.Wrapf(err, errors.ErrRelink, "failed to remove %s", link).
			WithDetail("link", link)
	}
	if err := l.symlinkDir(target, link); err != nil {
		return errors.Wrapf(err, errors.ErrRelink, "failed to create link %s -> %s", link, target).
			WithDetail("link", link).
			WithDetail("target", target)
	}
	return nil
}

// replaceStaged creates the new link at a temporary path and renames it
// over link. Platforms that refuse to rename onto an existing directory
// link get a remove followed by a rename, so the new link already exists
// when the old one goes away.
func (l *OSLinker) replaceStaged(link, target string) error {
	staging := link + StagingSuffix

	if err := l.clearStaging(staging); err != nil {
		return err
	}
	if err := l.symlinkDir(target, staging); err != nil {
		return errors.Wrapf(err, errors.ErrRelink, "failed to stage link %s -> %s", staging, target).
			WithDetail("link", link).
			WithDetail("target", target)
	}

	err := l.fs.Rename(staging, link)
	if err == nil {
		return nil
	}

	l.logger.Debug().
		Err(err).
		Str("link", link).
		Msg("Rename over existing link failed, removing original first")

	if rmErr := l.remove(link); rmErr != nil {
		_ = l.fs.Remove(staging)
		return errors.Wrapf(rmErr, errors.ErrRelink, "failed to remove %s", link).
			WithDetail("link", link)
	}
	if err := l.fs.Rename(staging, link); err != nil {
		return errors.Wrapf(err, errors.ErrRelink, "failed to move staged link into %s", link).
			WithDetail("link", link).
			WithDetail("staging", staging)
	}
	return nil
}

// clearStaging removes a link left at the staging path by an interrupted
// run. Any other entry there is not ours and stops the relink.
func (l *OSLinker) clearStaging(staging string) error {
	info, err := l.lstat(staging)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrRelink, "failed to inspect staging path %s", staging).
			WithDetail("staging", staging)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return errors.Newf(errors.ErrRelink, "staging path %s exists and is not a link", staging).
			WithDetail("staging", staging)
	}
	if err := l.remove(staging); err != nil {
		return errors.Wrapf(err, errors.ErrRelink, "failed to clear staging path %s", staging).
			WithDetail("staging", staging)
	}
	return nil
}

func (l *OSLinker) lstat(path string) (os.FileInfo, error) {
	if lstater, ok := l.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return l.fs.Stat(path)
}

// remove deletes a single entry, treating a missing entry as done
func (l *OSLinker) remove(path string) error {
	if err := l.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
