// Package ownership assigns a principal as owner of a directory tree and
// grants it full rights through an inheritable access-control entry.
//
// The grant is built as a platform-neutral Grant and handed to a Platform.
// On Windows the Platform reads the directory's security descriptor, merges
// an allow entry for the principal into its DACL, sets the owner, and writes
// the descriptor back once while SeRestorePrivilege is enabled. On POSIX
// hosts ownership is changed with chown across the tree and the owner's
// permission bits are opened up, which is the closest equivalent.
//
// Setter is the entry point used by the CLI:
//
//	setter := ownership.NewSetter(ownership.Options{})
//	if err := setter.TakeOwnership(`C:\ProgramData\ssh`, "sshd"); err != nil {
//		return err
//	}
package ownership
