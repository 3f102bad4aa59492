package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/staffbook/internal/record"
)

// EmptyRosterText is printed by list when there is nothing to show.
const EmptyRosterText = "No employees on record."

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List all employees in roster order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	sess, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	records := sess.store.List()
	if records == nil {
		records = []record.Record{}
	}
	return sess.formatter.Success(renderRecords(records), records, sess.warnings()...)
}

// renderRecords renders one record per line, or EmptyRosterText.
func renderRecords(records []record.Record) string {
	if len(records) == 0 {
		return EmptyRosterText
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.Render()
	}
	return strings.Join(lines, "\n")
}
