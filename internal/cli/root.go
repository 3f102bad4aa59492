package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/staffbook/internal/backend"
	"github.com/roach88/staffbook/internal/config"
)

// RootOptions holds global flags for all commands.
// PersistentPreRunE fills it from the resolved configuration.
type RootOptions struct {
	ConfigFile string
	File       string
	Backend    backend.Kind
	UniqueIDs  bool
	Verbose    bool
	Format     string // "text" | "json" | "yaml"
}

// NewRootCommand creates the root command for the staffbook CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "staffbook",
		Short: "staffbook - employee roster manager",
		Long: `Keep a small roster of employee records in a JSON file.

Every change is written back to the roster immediately. Settings come from
flags, STAFFBOOK_* environment variables, or a staffbook.yaml config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigFile, cmd.Flags())
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid configuration", err)
			}
			opts.File = cfg.File
			opts.Backend = cfg.Backend
			opts.UniqueIDs = cfg.UniqueIDs
			opts.Verbose = cfg.Verbose
			opts.Format = cfg.Format
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default: ./staffbook.yaml)")
	cmd.PersistentFlags().String("file", config.DefaultFile, "roster file or SQLite database path")
	cmd.PersistentFlags().String("backend", string(backend.KindFile), "storage backend (file|sqlite)")
	cmd.PersistentFlags().Bool("unique-ids", false, "reject adding an ID that already exists")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	cmd.PersistentFlags().String("format", "text", "output format (text|json|yaml)")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewFindCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))

	return cmd
}
