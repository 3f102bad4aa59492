package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/staffbook/internal/form"
)

// NewFindCommand creates the find command.
func NewFindCommand(rootOpts *RootOptions) *cobra.Command {
	sub := &form.Submission{}

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Show the employee with the given ID",
		Long: `Show the first employee in the roster with the given ID.

Example:
  staffbook find --id 1`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(rootOpts, sub.ID, cmd)
		},
	}

	formFlags(cmd, sub, false)

	return cmd
}

func runFind(opts *RootOptions, idText string, cmd *cobra.Command) error {
	sess, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	for _, w := range sess.warnings() {
		sess.formatter.Warn("%s", w)
	}

	id, err := form.ParseID(idText)
	if err != nil {
		return sess.fail(err, "")
	}
	r, err := sess.store.Find(id)
	if err != nil {
		return sess.fail(err, "")
	}
	return sess.formatter.Success(r.Render(), r)
}
