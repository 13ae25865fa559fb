package fixsymlinks

import (
	"github.com/arthur-debert/linkfix/internal/cli"
	"github.com/arthur-debert/linkfix/pkg/config"
	"github.com/arthur-debert/linkfix/pkg/logging"
	"github.com/arthur-debert/linkfix/pkg/symlinks"
	"github.com/spf13/cobra"
)

// NewCommand creates the fix-symlinks command
func NewCommand(settings *cli.Settings) *cobra.Command {
	var singlePass bool

	cmd := &cobra.Command{
		Use:     "fix-symlinks DIRECTORY",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings.LoadConfig()
			if err != nil {
				return err
			}
			if singlePass {
				cfg.Symlinks.Discovery = config.DiscoverySinglePass
			}

			renderer, err := settings.Renderer(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			ctx, cancel := settings.Context(cmd.Context())
			defer cancel()

			logger := logging.GetLogger("cmd.fix-symlinks")
			logger.Debug().
				Str("directory", args[0]).
				Str("shell", cfg.ShellPath()).
				Str("translator", cfg.TranslatorPath()).
				Bool("dryRun", settings.DryRun).
				Msg("Fixing symlinks")

			reconciler := symlinks.NewFromConfig(cfg, settings.CommandExecutor(), settings.DryRun)
			result, err := reconciler.FixSymlinks(ctx, args[0])
			if result != nil {
				if rerr := renderer.RenderResult(result); rerr != nil && err == nil {
					err = rerr
				}
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&singlePass, "single-pass", false, MsgFlagSinglePass)
	return cmd
}
