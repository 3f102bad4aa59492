package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/staffbook/internal/form"
	"github.com/roach88/staffbook/internal/store"
)

// BatchEntryResult is the outcome of one batch submission.
type BatchEntryResult struct {
	Index  int    `json:"index" yaml:"index"`
	Op     string `json:"op" yaml:"op"`
	ID     string `json:"id" yaml:"id"`
	Status string `json:"status" yaml:"status"` // "ok" or the store error code
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// BatchResult holds the overall batch outcome.
type BatchResult struct {
	Applied int                `json:"applied" yaml:"applied"`
	Failed  int                `json:"failed" yaml:"failed"`
	Results []BatchEntryResult `json:"results" yaml:"results"`
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Apply a file of queued form submissions",
		Long: `Apply add, update and delete submissions from a YAML file, in order.

Each submission is applied on its own: a failing entry is reported and
the rest still run. The roster is saved after every successful entry.

Example file:
  submissions:
    - op: add
      id: 1
      name: Alice
      title: Engineer
      compensation: 90000
    - op: delete
      id: 1

Exit codes:
  0 - All submissions applied
  1 - One or more submissions failed
  2 - Command error (unreadable batch file, etc.)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runBatch(opts *RootOptions, path string, cmd *cobra.Command) error {
	batch, err := form.LoadBatch(path)
	if err != nil {
		formatter := newFormatter(opts, cmd)
		_ = formatter.Error("INVALID_BATCH", err.Error(), nil)
		return &ExitError{Code: ExitCommandError, Message: "invalid batch file", Err: err, Reported: true}
	}

	sess, err := openSession(opts, cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.requireLoaded(); err != nil {
		return err
	}

	ctx := commandContext(cmd)
	result := BatchResult{Results: make([]BatchEntryResult, 0, len(batch.Submissions))}
	for i, entry := range batch.Submissions {
		res := BatchEntryResult{Index: i, Op: string(entry.Op), ID: strings.TrimSpace(entry.ID), Status: "ok"}
		if err := form.Apply(ctx, sess.store, entry.Op, entry.Submission); err != nil {
			res.Status = string(store.CodeOf(err))
			if res.Status == "" {
				res.Status = "ERROR"
			}
			res.Error = err.Error()
			result.Failed++
		} else {
			result.Applied++
		}
		sess.formatter.VerboseLog("submission %d (%s %s): %s", i, res.Op, res.ID, res.Status)
		result.Results = append(result.Results, res)
	}

	if err := sess.formatter.Success(renderBatch(result), result); err != nil {
		return err
	}
	if result.Failed > 0 {
		return &ExitError{
			Code:     ExitFailure,
			Message:  fmt.Sprintf("%d of %d submissions failed", result.Failed, len(result.Results)),
			Reported: true,
		}
	}
	return nil
}

func renderBatch(result BatchResult) string {
	var b strings.Builder
	for _, r := range result.Results {
		if r.Error != "" {
			fmt.Fprintf(&b, "#%d %s %s: %s\n", r.Index, r.Op, r.ID, r.Error)
		} else {
			fmt.Fprintf(&b, "#%d %s %s: ok\n", r.Index, r.Op, r.ID)
		}
	}
	fmt.Fprintf(&b, "%d applied, %d failed.", result.Applied, result.Failed)
	return b.String()
}
