// Package paths provides path handling for linkfix.
//
// It resolves the XDG locations linkfix reads its configuration from and
// writes its log file to, and turns the configured emulation-layer binaries
// (shell, path translator) into executable paths relative to the base
// installation directory.
//
// # Environment Variables
//
//   - LINKFIX_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/linkfix)
//   - LINKFIX_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/linkfix)
package paths
