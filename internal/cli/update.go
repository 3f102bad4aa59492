package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/staffbook/internal/form"
)

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	sub := &form.Submission{}

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change an employee's name, title or compensation",
		Long: `Change the details of the first employee with the given ID.

Fields that are not given keep their current value. The ID itself
cannot be changed.

Example:
  staffbook update --id 1 --title "Staff Engineer" --compensation 95000`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(rootOpts, *sub, cmd)
		},
	}

	formFlags(cmd, sub, true)

	return cmd
}

func runUpdate(opts *RootOptions, sub form.Submission, cmd *cobra.Command) error {
	sess, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.requireLoaded(); err != nil {
		return err
	}

	id, err := form.ParseID(sub.ID)
	if err != nil {
		return sess.fail(err, "")
	}
	current, err := sess.store.Find(id)
	if err != nil {
		return sess.fail(err, "")
	}

	// Start from the current values, like a pre-filled form.
	if !cmd.Flags().Changed("name") {
		sub.Name = current.Name
	}
	if !cmd.Flags().Changed("title") {
		sub.Title = current.Title
	}
	if !cmd.Flags().Changed("compensation") {
		sub.Compensation = strconv.FormatFloat(current.Compensation, 'g', -1, 64)
	}

	req, err := sub.Parse()
	if err != nil {
		return sess.fail(err, "")
	}
	if err := sess.store.Update(commandContext(cmd), req.ID, req.Name, req.Title, req.Compensation); err != nil {
		return sess.fail(err, "")
	}

	updated, _ := sess.store.Find(id)
	return sess.formatter.Success(fmt.Sprintf("Employee %d updated.", id), updated)
}
