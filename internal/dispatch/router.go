package dispatch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/bbr88/tabdump/bootstrap/internal/archive"
	"github.com/bbr88/tabdump/bootstrap/internal/branding"
	"github.com/bbr88/tabdump/bootstrap/internal/config"
	"github.com/bbr88/tabdump/bootstrap/internal/handoff"
	"github.com/bbr88/tabdump/bootstrap/internal/runtime"
	"github.com/spf13/afero"
)

// Router maps a command invocation to exactly one outcome.
type Router struct {
	resolver        *archive.Resolver
	runtime         *runtime.Delegate
	installScript   string
	uninstallScript string

	handoff handoff.Handoff
	stdout  io.Writer
	stderr  io.Writer
	logger  *slog.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithHandoff sets how control is transferred to delegates.
func WithHandoff(h handoff.Handoff) Option {
	return func(r *Router) {
		r.handoff = h
	}
}

// WithOutput sets the streams for usage text and error reports.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *Router) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Router) {
		r.logger = l
	}
}

// New builds a Router for layout, querying the filesystem through fs.
func New(fs afero.Fs, layout *config.Layout, opts ...Option) (*Router, error) {
	order, err := archive.OrderByName(layout.ArchiveOrder, branding.VersionedArchivePrefix(), branding.ArchiveExt)
	if err != nil {
		return nil, err
	}

	r := &Router{
		resolver:        archive.NewResolver(fs, layout.DistDir, archive.WithOrder(order)),
		runtime:         runtime.NewDelegate(fs, layout.RuntimePath),
		installScript:   layout.InstallScript,
		uninstallScript: layout.UninstallScript,
		handoff:         handoff.Default(),
		stdout:          os.Stdout,
		stderr:          os.Stderr,
		logger:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Dispatch routes args (without the program name). The first argument is
// the command, defaulting to help; the rest are passed through untouched.
// A non-nil error is always an *ExitError whose message was already written
// to stderr.
func (r *Router) Dispatch(args []string) (Outcome, error) {
	command := CommandHelp
	var rest []string
	if len(args) > 0 {
		command, rest = args[0], args[1:]
	}
	r.logger.Debug("routing command", "command", command, "args", len(rest))

	switch {
	case command == CommandInit:
		return r.install(rest)
	case command == CommandUninstall:
		return r.uninstall(rest)
	case IsHelp(args):
		return r.usage()
	default:
		return r.delegate(command, rest)
	}
}

// IsHelp reports whether args ask for usage: no arguments, or a first
// argument of help, -h or --help.
func IsHelp(args []string) bool {
	return len(args) == 0 || slices.Contains(helpNames, args[0])
}

// PrintUsage writes the usage text to w. It needs no configuration.
func PrintUsage(w io.Writer) error {
	if err := RenderUsage(w); err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("rendering usage: %w", err)}
	}
	return nil
}

func (r *Router) usage() (Outcome, error) {
	if err := PrintUsage(r.stdout); err != nil {
		return OutcomeError, err
	}
	return OutcomeUsage, nil
}

// delegate forwards command to the installed runtime, or reports that the
// bootstrap has not been initialized yet.
func (r *Router) delegate(command string, args []string) (Outcome, error) {
	state := r.runtime.State()
	r.logger.Debug("runtime state", "path", r.runtime.Path(), "state", state.String())

	if state != runtime.StateInitialized {
		fmt.Fprintf(r.stderr, "[error] %s is not initialized yet.\n", branding.DisplayName())
		fmt.Fprintf(r.stderr, "[hint] Run: %s %s\n", branding.CLIName(), branding.InitExample())
		return OutcomeNotInitialized, &ExitError{Code: 1, Err: ErrNotInitialized}
	}
	return r.exec(OutcomeRuntime, r.runtime.Path(), r.runtime.Argv(command, args))
}

// exec hands off to path. It returns only if the handoff did not take over
// the process: after a recorded handoff in tests, or when path could not be
// started.
func (r *Router) exec(outcome Outcome, path string, argv []string) (Outcome, error) {
	r.logger.Debug("handing off", "outcome", outcome.String(), "path", path, "argv", argv)

	if err := r.handoff.Exec(path, argv); err != nil {
		fmt.Fprintf(r.stderr, "[error] %v\n", err)
		code := 1
		var herr *handoff.Error
		if errors.As(err, &herr) {
			code = herr.ExitCode()
		}
		return OutcomeError, &ExitError{Code: code, Err: err}
	}
	return outcome, nil
}
