//go:build !windows

package ownership

import (
	"os"
	"os/user"
	"strconv"
	"syscall"

	"github.com/arthur-debert/linkfix/pkg/errors"
	"github.com/spf13/afero"
)

// posixPlatform maps a grant onto chown plus owner permission bits, the
// nearest POSIX equivalent of an owner change with an inheritable
// full-control entry.
type posixPlatform struct {
	fs     afero.Fs
	lookup func(name string) (*user.User, error)
}

// NewPlatform returns the host Platform
func NewPlatform(fs afero.Fs) Platform {
	return &posixPlatform{fs: fs, lookup: user.Lookup}
}

func (p *posixPlatform) Apply(grant Grant) error {
	u, err := p.lookup(grant.Principal)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "unknown principal %s", grant.Principal)
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "non-numeric uid %q", u.Uid)
	}

	dirBits, fileBits := ownerBits(grant.Rights)

	walk := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return nil
		}
		if path != grant.Path && grant.Inheritance == 0 {
			return nil
		}
		// group is left as is, only the owner changes
		if err := p.fs.Chown(path, uid, -1); err != nil {
			return err
		}
		bits := fileBits
		if info.IsDir() {
			bits = dirBits
		}
		return p.fs.Chmod(path, info.Mode()&keptModeBits|bits)
	}

	if err := afero.Walk(p.fs, grant.Path, walk); err != nil {
		return errors.Wrapf(err, errors.ErrAccessControl, "failed to apply grant under %s", grant.Path)
	}
	return nil
}

// keptModeBits are the mode bits carried over when owner bits are added
const keptModeBits = os.ModePerm | os.ModeSetuid | os.ModeSetgid | os.ModeSticky

// ownerBits returns the owner permission bits for directories and files
func ownerBits(r Rights) (dir, file os.FileMode) {
	if r.Has(Read) {
		dir |= 0500
		file |= 0400
	}
	if r.Has(Write) || r.Has(Modify) || r.Has(Delete) {
		dir |= 0300
		file |= 0200
	}
	if r.Has(FullControl) {
		dir |= 0700
		file |= 0600
	}
	return dir, file
}

func (p *posixPlatform) Inspect(path string) (Report, error) {
	report := Report{Path: path}

	info, err := p.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return report, nil
		}
		return report, err
	}
	report.Exists = true

	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		uid := strconv.FormatUint(uint64(st.Uid), 10)
		report.Owner = uid
		if u, err := user.LookupId(uid); err == nil {
			report.Owner = u.Username
		}
	}

	report.ACEs = []ACE{{
		Principal: report.Owner,
		Rights:    rightsFromPerm(info.Mode().Perm()).String(),
		Type:      "Allow",
	}}
	return report, nil
}

// rightsFromPerm reads the owner bits back as Rights
func rightsFromPerm(perm os.FileMode) Rights {
	var r Rights
	if perm&0400 != 0 {
		r |= Read
	}
	if perm&0200 != 0 {
		r |= Write | Delete | Modify
	}
	if perm&0700 == 0700 {
		r |= FullControl
	}
	return r
}
