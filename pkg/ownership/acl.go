package ownership

import (
	"strings"
)

// Rights is a set of file system access rights
type Rights uint32

const (
	Read Rights = 1 << iota
	Write
	Delete
	Modify
	FullControl
)

// AllRights is what TakeOwnership grants
const AllRights = Read | Write | Delete | Modify | FullControl

var rightNames = []struct {
	right Rights
	name  string
	mask  uint32
}{
	{Read, "Read", 0x00020089},
	{Write, "Write", 0x00000116},
	{Delete, "Delete", 0x00010000},
	{Modify, "Modify", 0x000301BF},
	{FullControl, "FullControl", 0x001F01FF},
}

// Mask returns the Windows access mask for the rights
func (r Rights) Mask() uint32 {
	var mask uint32
	for _, rn := range rightNames {
		if r&rn.right != 0 {
			mask |= rn.mask
		}
	}
	return mask
}

// RightsFromMask returns every right fully covered by mask
func RightsFromMask(mask uint32) Rights {
	var r Rights
	for _, rn := range rightNames {
		if mask&rn.mask == rn.mask {
			r |= rn.right
		}
	}
	return r
}

// Has reports whether all rights in other are present
func (r Rights) Has(other Rights) bool {
	return r&other == other
}

func (r Rights) String() string {
	var names []string
	for _, rn := range rightNames {
		if r&rn.right != 0 {
			names = append(names, rn.name)
		}
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, "|")
}

// Inheritance controls which descendants inherit an entry
type Inheritance uint8

const (
	ContainerInherit Inheritance = 1 << iota
	ObjectInherit
)

func (i Inheritance) String() string {
	var flags []string
	if i&ContainerInherit != 0 {
		flags = append(flags, "CI")
	}
	if i&ObjectInherit != 0 {
		flags = append(flags, "OI")
	}
	if len(flags) == 0 {
		return "None"
	}
	return strings.Join(flags, "|")
}

// Grant is the ownership change applied to one directory: Principal becomes
// the owner and receives an allow entry for Rights with Inheritance. No
// propagation restriction is set, so the entry applies to the directory
// itself and everything below it.
type Grant struct {
	Path        string
	Principal   string
	Rights      Rights
	Inheritance Inheritance
}

// NewGrant builds the full-control grant TakeOwnership applies
func NewGrant(path, principal string) Grant {
	return Grant{
		Path:        path,
		Principal:   principal,
		Rights:      AllRights,
		Inheritance: ContainerInherit | ObjectInherit,
	}
}

// ACE is a minimal view of one access-control entry
type ACE struct {
	Principal   string `json:"principal" yaml:"principal"`
	Rights      string `json:"rights" yaml:"rights"`
	Type        string `json:"type" yaml:"type"`
	Inheritance string `json:"inheritance,omitempty" yaml:"inheritance,omitempty"`
	Inherited   bool   `json:"inherited" yaml:"inherited"`
}

// Report is the ownership and access state of a path
type Report struct {
	Path   string `json:"path" yaml:"path"`
	Exists bool   `json:"exists" yaml:"exists"`
	Owner  string `json:"owner" yaml:"owner"`
	ACEs   []ACE  `json:"aces" yaml:"aces"`
}

// Platform applies grants and reads back access state. Implementations
// are platform specific.
type Platform interface {
	Apply(grant Grant) error
	Inspect(path string) (Report, error)
}
