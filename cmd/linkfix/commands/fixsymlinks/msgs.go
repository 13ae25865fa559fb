package fixsymlinks

// Message constants
const (
	MsgShort = "Recreate emulation-layer symlinks as native directory links"
	MsgLong  = `Find every symbolic link below DIRECTORY from inside the emulation layer,
translate each link and its target to native paths, and recreate as a
native directory link every link whose translated target differs from its
own translated path.

Links the translator leaves unchanged are already native and are skipped.
Nothing is modified if discovery fails or the link and target lists differ
in length. A failed relink stops the pass; links fixed before it stay fixed.`
	MsgExample = `  linkfix fix-symlinks 'C:\Program Files\OpenSSH'
  linkfix fix-symlinks --dry-run --base-dir 'C:\cygwin64' 'C:\srv\app'
  linkfix fix-symlinks --single-pass -f json 'C:\srv\app'`

	MsgFlagSinglePass = "Discover links and targets in one pipeline run"
)
