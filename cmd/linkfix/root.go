package linkfix

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/linkfix/cmd/linkfix/commands/configcmd"
	"github.com/arthur-debert/linkfix/cmd/linkfix/commands/fixsymlinks"
	"github.com/arthur-debert/linkfix/cmd/linkfix/commands/inspect"
	"github.com/arthur-debert/linkfix/cmd/linkfix/commands/takeownership"
	"github.com/arthur-debert/linkfix/internal/cli"
	"github.com/arthur-debert/linkfix/internal/version"
	"github.com/arthur-debert/linkfix/pkg/logging"
	"github.com/arthur-debert/linkfix/pkg/ui/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&cli.Settings{})
}

// Execute runs linkfix with the process arguments and returns the exit code
func Execute() int {
	settings := &cli.Settings{}
	return execute(newRootCmd(settings), settings, os.Stdout, os.Stderr)
}

// execute runs cmd. Failures go to stdout through the json or yaml renderer
// when that format is selected, and to stderr as styled text otherwise.
func execute(cmd *cobra.Command, settings *cli.Settings, stdout, stderr io.Writer) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	if settings.RenderError(stdout, err) {
		return 1
	}
	fmt.Fprintln(stderr, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
	return 1
}

func newRootCmd(settings *cli.Settings) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "linkfix",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(settings.Verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	settings.Bind(rootCmd)

	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: "COMMANDS:"},
		&cobra.Group{ID: "config", Title: "CONFIGURATION:"},
		&cobra.Group{ID: "misc", Title: "MISC:"},
	)
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(fixsymlinks.NewCommand(settings))
	rootCmd.AddCommand(takeownership.NewCommand(settings))
	rootCmd.AddCommand(inspect.NewCommand(settings))
	rootCmd.AddCommand(configcmd.NewCommand(settings))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
