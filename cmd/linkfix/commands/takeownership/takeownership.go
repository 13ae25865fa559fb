package takeownership

import (
	"fmt"

	"github.com/arthur-debert/linkfix/internal/cli"
	"github.com/arthur-debert/linkfix/pkg/ownership"
	"github.com/spf13/cobra"
)

// NewCommand creates the take-ownership command
func NewCommand(settings *cli.Settings) *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:     "take-ownership DIRECTORY PRINCIPAL",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			directory, principal := args[0], args[1]

			cfg, err := settings.LoadConfig()
			if err != nil {
				return err
			}
			renderer, err := settings.Renderer(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			if settings.DryRun {
				grant := ownership.NewGrant(directory, principal)
				return renderer.RenderMessage(fmt.Sprintf(MsgDryRun,
					principal, directory, grant.Rights, grant.Inheritance))
			}

			setter := settings.OwnershipSetter()
			if err := setter.TakeOwnership(directory, principal); err != nil {
				return err
			}

			if !show {
				return renderer.RenderMessage(fmt.Sprintf(MsgDone, principal, directory))
			}
			report, err := setter.Inspect(directory)
			if err != nil {
				return err
			}
			return renderer.RenderResult(report)
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, MsgFlagShow)
	return cmd
}
