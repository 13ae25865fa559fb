//go:build windows

package ownership

import (
	"unsafe"

	"github.com/arthur-debert/linkfix/pkg/errors"
	"golang.org/x/sys/windows"
)

const seRestorePrivilege = "SeRestorePrivilege"

// enablePrivilege enables name on the process token and returns a func
// restoring the previous state. The privilege must already be held; an
// unheld privilege surfaces as access denied on the write that needs it.
func enablePrivilege(name string) (func(), error) {
	var token windows.Token
	err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_ADJUST_PRIVILEGES|windows.TOKEN_QUERY, &token)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrPrivilege, "failed to open process token")
	}

	var luid windows.LUID
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		token.Close()
		return nil, errors.Wrapf(err, errors.ErrPrivilege, "invalid privilege name %s", name)
	}
	if err := windows.LookupPrivilegeValue(nil, namePtr, &luid); err != nil {
		token.Close()
		return nil, errors.Wrapf(err, errors.ErrPrivilege, "failed to look up %s", name)
	}

	enable := windows.Tokenprivileges{
		PrivilegeCount: 1,
		Privileges: [1]windows.LUIDAndAttributes{{
			Luid:       luid,
			Attributes: windows.SE_PRIVILEGE_ENABLED,
		}},
	}
	var previous windows.Tokenprivileges
	var size uint32
	err = windows.AdjustTokenPrivileges(token, false, &enable, uint32(unsafe.Sizeof(previous)), &previous, &size)
	if err != nil {
		token.Close()
		return nil, errors.Wrapf(err, errors.ErrPrivilege, "failed to enable %s", name)
	}

	return func() {
		_ = windows.AdjustTokenPrivileges(token, false, &previous, 0, nil, nil)
		token.Close()
	}, nil
}
