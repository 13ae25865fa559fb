package configcmd

// Message constants
const (
	MsgShort     = "Show or create the linkfix configuration"
	MsgShowShort = "Print the effective configuration"
	MsgShowLong  = `Print the configuration after merging the embedded defaults, the user
config file, LINKFIX_* environment variables and command-line flags.
Output is TOML unless --format yaml is given.`
	MsgInitShort = "Print a commented default configuration"
	MsgInitLong  = `Print the default configuration with every value commented out, ready
to be edited. With --write it is saved to the user config directory.`

	MsgFlagWrite = "Write the file to the user config directory"
	MsgFlagForce = "Overwrite an existing config file"

	MsgWritten = "Wrote %s"
)
