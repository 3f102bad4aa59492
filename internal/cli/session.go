package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/staffbook/internal/backend"
	"github.com/roach88/staffbook/internal/config"
	"github.com/roach88/staffbook/internal/store"
)

// session is one command's view of the roster.
type session struct {
	store     *store.Store
	formatter *OutputFormatter

	// loadErr is set when the roster existed but could not be loaded.
	// The store is then empty.
	loadErr error
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	format := opts.Format
	if format == "" {
		format = "text"
	}
	return &OutputFormatter{
		Format:    format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Diagnostics go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// newLogger builds the slog logger handed to the store.
// Warnings and errors only, unless verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// openSession opens the configured backend and loads the roster.
// A roster that fails to load is recorded in loadErr, not returned.
func openSession(opts *RootOptions, cmd *cobra.Command) (*session, error) {
	formatter := newFormatter(opts, cmd)

	kind := opts.Backend
	if kind == "" {
		kind = backend.KindFile
	}
	file := opts.File
	if file == "" {
		file = config.DefaultFile
	}

	b, err := backend.Open(kind, file)
	if err != nil {
		_ = formatter.Error("BACKEND_UNAVAILABLE", err.Error(), nil)
		return nil, &ExitError{Code: ExitCommandError, Message: "failed to open backend", Err: err, Reported: true}
	}
	formatter.VerboseLog("Using %s backend at %s", kind, b.Describe())

	st, loadErr := store.Open(commandContext(cmd), b,
		store.WithUniqueIDs(opts.UniqueIDs),
		store.WithLogger(newLogger(cmd.ErrOrStderr(), opts.Verbose)),
	)
	return &session{store: st, formatter: formatter, loadErr: loadErr}, nil
}

func (s *session) Close() {
	_ = s.store.Backend().Close()
}

// warnings returns the load problem, if any, as a warning for read-only
// commands that proceed on an empty roster.
func (s *session) warnings() []string {
	if s.loadErr == nil {
		return nil
	}
	return []string{"roster could not be loaded, showing an empty roster: " + s.loadErr.Error()}
}

// requireLoaded refuses to modify a roster that failed to load. Writing
// would replace the unreadable document with an empty one.
func (s *session) requireLoaded() error {
	if s.loadErr == nil {
		return nil
	}
	return s.fail(s.loadErr, "roster could not be loaded; refusing to modify it")
}

// fail reports err through the formatter and returns the matching
// ExitError. prefix, when set, is prepended to the message.
func (s *session) fail(err error, prefix string) error {
	code := string(store.CodeOf(err))
	if code == "" {
		code = "ERROR"
	}

	message := err.Error()
	var details any
	var se *store.Error
	if errors.As(err, &se) {
		message = se.Message
		if se.Err != nil {
			message += ": " + se.Err.Error()
		}
		if se.Field != "" {
			details = map[string]string{"field": se.Field}
		}
	}
	if prefix != "" {
		message = prefix + ": " + message
	}

	if outErr := s.formatter.Error(code, message, details); outErr != nil {
		return WrapExitError(ExitFailure, "failed to write output", outErr)
	}
	return &ExitError{Code: ExitFailure, Message: message, Err: err, Reported: true}
}
