package configcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/linkfix/internal/cli"
	"github.com/arthur-debert/linkfix/pkg/config"
	"github.com/arthur-debert/linkfix/pkg/errors"
	"github.com/arthur-debert/linkfix/pkg/paths"
	"github.com/spf13/cobra"
)

// NewCommand creates the config command and its subcommands
func NewCommand(settings *cli.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgShort,
		GroupID: "config",
	}
	cmd.AddCommand(newShowCmd(settings))
	cmd.AddCommand(newInitCmd())
	return cmd
}

func newShowCmd(settings *cli.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: MsgShowShort,
		Long:  MsgShowLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings.LoadConfig()
			if err != nil {
				return err
			}

			format := "toml"
			if cfg.Output.Format == config.FormatYAML {
				format = "yaml"
			}
			data, err := config.Marshal(cfg, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newInitCmd() *cobra.Command {
	var write, force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgInitShort,
		Long:  MsgInitLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path := filepath.Join(paths.ConfigDir(), paths.ConfigBaseName+".toml")
			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.ErrInvalidInput, "%s already exists, use --force to overwrite", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrConfigLoad, "failed to create %s", filepath.Dir(path))
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrConfigLoad, "failed to write %s", path)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgWritten+"\n", path)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}
