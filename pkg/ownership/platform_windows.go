//go:build windows

package ownership

import (
	"unsafe"

	"github.com/arthur-debert/linkfix/pkg/errors"
	"github.com/spf13/afero"
	"golang.org/x/sys/windows"
)

const (
	aceTypeAllowed = 0x0
	aceTypeDenied  = 0x1

	aceObjectInherit    = 0x1
	aceContainerInherit = 0x2
	aceInherited        = 0x10
)

// windowsPlatform edits the file's security descriptor through the Win32
// security API
type windowsPlatform struct {
	fs afero.Fs
}

// NewPlatform returns the host Platform
func NewPlatform(fs afero.Fs) Platform {
	return &windowsPlatform{fs: fs}
}

func (p *windowsPlatform) Apply(grant Grant) error {
	sid, _, _, err := windows.LookupSID("", grant.Principal)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "unknown principal %s", grant.Principal)
	}

	sd, err := windows.GetNamedSecurityInfo(grant.Path, windows.SE_FILE_OBJECT, windows.DACL_SECURITY_INFORMATION)
	if err != nil {
		return errors.Wrapf(err, errors.ErrAccessControl, "failed to read security descriptor of %s", grant.Path)
	}
	current, _, err := sd.DACL()
	if err != nil && err != windows.ERROR_OBJECT_NOT_FOUND {
		return errors.Wrapf(err, errors.ErrAccessControl, "failed to read DACL of %s", grant.Path)
	}

	entries := []windows.EXPLICIT_ACCESS{{
		AccessPermissions: windows.ACCESS_MASK(grant.Rights.Mask()),
		AccessMode:        windows.GRANT_ACCESS,
		Inheritance:       inheritanceFlags(grant.Inheritance),
		Trustee: windows.TRUSTEE{
			TrusteeForm:  windows.TRUSTEE_IS_SID,
			TrusteeType:  windows.TRUSTEE_IS_UNKNOWN,
			TrusteeValue: windows.TrusteeValueFromSID(sid),
		},
	}}
	dacl, err := windows.ACLFromEntries(entries, current)
	if err != nil {
		return errors.Wrapf(err, errors.ErrAccessControl, "failed to build DACL for %s", grant.Path)
	}

	release, err := enablePrivilege(seRestorePrivilege)
	if err != nil {
		return err
	}
	defer release()

	err = windows.SetNamedSecurityInfo(grant.Path, windows.SE_FILE_OBJECT,
		windows.OWNER_SECURITY_INFORMATION|windows.DACL_SECURITY_INFORMATION,
		sid, nil, dacl, nil)
	if err != nil {
		return errors.Wrapf(err, errors.ErrAccessControl, "failed to write security descriptor of %s", grant.Path)
	}
	return nil
}

func inheritanceFlags(i Inheritance) uint32 {
	switch {
	case i&ContainerInherit != 0 && i&ObjectInherit != 0:
		return windows.SUB_CONTAINERS_AND_OBJECTS_INHERIT
	case i&ContainerInherit != 0:
		return windows.SUB_CONTAINERS_ONLY_INHERIT
	case i&ObjectInherit != 0:
		return windows.SUB_OBJECTS_ONLY_INHERIT
	default:
		return windows.NO_INHERITANCE
	}
}

func (p *windowsPlatform) Inspect(path string) (Report, error) {
	report := Report{Path: path}

	sd, err := windows.GetNamedSecurityInfo(path, windows.SE_FILE_OBJECT,
		windows.OWNER_SECURITY_INFORMATION|windows.DACL_SECURITY_INFORMATION)
	if err != nil {
		if err == windows.ERROR_FILE_NOT_FOUND || err == windows.ERROR_PATH_NOT_FOUND {
			return report, nil
		}
		return report, err
	}
	report.Exists = true

	owner, _, err := sd.Owner()
	if err != nil {
		return report, err
	}
	report.Owner = accountName(owner)

	dacl, _, err := sd.DACL()
	if err != nil {
		if err == windows.ERROR_OBJECT_NOT_FOUND {
			return report, nil
		}
		return report, err
	}
	if dacl == nil {
		return report, nil
	}

	for i := uint32(0); i < uint32(dacl.AceCount); i++ {
		var ace *windows.ACCESS_ALLOWED_ACE
		if err := windows.GetAce(dacl, i, &ace); err != nil {
			return report, err
		}

		var aceType string
		switch ace.Header.AceType {
		case aceTypeAllowed:
			aceType = "Allow"
		case aceTypeDenied:
			aceType = "Deny"
		default:
			continue
		}

		var inherit Inheritance
		if ace.Header.AceFlags&aceContainerInherit != 0 {
			inherit |= ContainerInherit
		}
		if ace.Header.AceFlags&aceObjectInherit != 0 {
			inherit |= ObjectInherit
		}

		sid := (*windows.SID)(unsafe.Pointer(&ace.SidStart))
		report.ACEs = append(report.ACEs, ACE{
			Principal:   accountName(sid),
			Rights:      RightsFromMask(uint32(ace.Mask)).String(),
			Type:        aceType,
			Inheritance: inherit.String(),
			Inherited:   ace.Header.AceFlags&aceInherited != 0,
		})
	}
	return report, nil
}

// accountName renders a SID as DOMAIN\account, falling back to the SID string
func accountName(sid *windows.SID) string {
	account, domain, _, err := sid.LookupAccount("")
	if err != nil {
		return sid.String()
	}
	if domain == "" {
		return account
	}
	return domain + `\` + account
}
