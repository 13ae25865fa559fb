package inspect

import (
	"github.com/arthur-debert/linkfix/internal/cli"
	"github.com/spf13/cobra"
)

const (
	msgShort = "Show the owner and access entries of a path"
	msgLong  = `Print the owner of PATH and its access-control entries: principal,
rights, inheritance flags and whether the entry is inherited. On POSIX
hosts the owner's permission bits are shown as a single entry.`
)

// NewCommand creates the inspect command
func NewCommand(settings *cli.Settings) *cobra.Command {
	return &cobra.Command{
		Use:     "inspect PATH",
		Short:   msgShort,
		Long:    msgLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings.LoadConfig()
			if err != nil {
				return err
			}
			renderer, err := settings.Renderer(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			report, err := settings.OwnershipSetter().Inspect(args[0])
			if err != nil {
				return err
			}
			return renderer.RenderResult(report)
		},
	}
}
