// Package filesystem provides the link replacement used by symlink
// reconciliation.
//
// File operations go through an afero.Fs so the staging and fallback logic
// can be exercised against the real OS filesystem in tests. Creating the
// directory-type link itself is platform specific: on windows it calls
// CreateSymbolicLink with the directory flag so the link keeps its type even
// when the target does not exist yet.
package filesystem
