package takeownership

// Message constants
const (
	MsgShort = "Make a principal the owner of a directory tree with full control"
	MsgLong  = `Make PRINCIPAL the owner of DIRECTORY and grant it read, write, delete,
modify and full control through an access-control entry inherited by every
child directory and file.

On Windows this requires the SeRestorePrivilege, normally held by elevated
administrators; it is enabled only for the single security descriptor
write. On POSIX hosts the tree is chowned and the owner's permission bits
are opened up.`
	MsgExample = `  linkfix take-ownership 'C:\ProgramData\ssh' sshd
  linkfix take-ownership --show /srv/app deploy`

	MsgFlagShow = "Print the resulting owner and access entries"

	MsgDryRun = "Dry run: %s would become owner of %s with %s (%s)"
	MsgDone   = "%s is now owner of %s"
)
