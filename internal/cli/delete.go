package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/staffbook/internal/form"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	sub := &form.Submission{}

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove the employee with the given ID",
		Long: `Remove the first employee in the roster with the given ID.

Example:
  staffbook delete --id 1`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, sub.ID, cmd)
		},
	}

	formFlags(cmd, sub, false)

	return cmd
}

func runDelete(opts *RootOptions, idText string, cmd *cobra.Command) error {
	sess, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.requireLoaded(); err != nil {
		return err
	}

	id, err := form.ParseID(idText)
	if err != nil {
		return sess.fail(err, "")
	}
	if err := sess.store.Delete(commandContext(cmd), id); err != nil {
		return sess.fail(err, "")
	}

	return sess.formatter.Success(fmt.Sprintf("Employee %d deleted.", id), map[string]int64{"employee_id": id})
}
