package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/staffbook/internal/form"
)

// formFlags binds the employee form fields to command flags.
// Values stay text until form parsing.
func formFlags(cmd *cobra.Command, sub *form.Submission, withDetails bool) {
	cmd.Flags().StringVar(&sub.ID, "id", "", "employee ID (whole number)")
	if !withDetails {
		return
	}
	cmd.Flags().StringVar(&sub.Name, "name", "", "employee name")
	cmd.Flags().StringVar(&sub.Title, "title", "", "job title")
	cmd.Flags().StringVar(&sub.Compensation, "compensation", "", "compensation (number)")
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	sub := &form.Submission{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee to the roster",
		Long: `Add an employee to the end of the roster.

Example:
  staffbook add --id 1 --name Alice --title Engineer --compensation 90000`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, *sub, cmd)
		},
	}

	formFlags(cmd, sub, true)

	return cmd
}

func runAdd(opts *RootOptions, sub form.Submission, cmd *cobra.Command) error {
	sess, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.requireLoaded(); err != nil {
		return err
	}

	req, err := sub.Parse()
	if err != nil {
		return sess.fail(err, "")
	}
	if err := sess.store.Add(commandContext(cmd), req.ID, req.Name, req.Title, req.Compensation); err != nil {
		return sess.fail(err, "")
	}

	list := sess.store.List()
	added := list[len(list)-1]
	return sess.formatter.Success(fmt.Sprintf("Employee %d added.", req.ID), added)
}
