package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bbr88/tabdump/bootstrap/internal/branding"
	"github.com/bbr88/tabdump/bootstrap/internal/config"
	"github.com/bbr88/tabdump/bootstrap/internal/dispatch"
	"github.com/bbr88/tabdump/bootstrap/internal/handoff"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Test seams.
var (
	newFs      = afero.NewOsFs
	newHandoff = handoff.Default
)

// NewRootCommand returns the tabdump root command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.CLIName() + " <command> [args...]",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` bootstrap. Before initialization only init, uninstall and help
are available; afterwards every other command is delegated to the runtime
installed in your user profile.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE:               run,
	}
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	// Usage is static; a broken layout must not hide it.
	if dispatch.IsHelp(args) {
		return dispatch.PrintUsage(cmd.OutOrStdout())
	}

	fs := newFs()

	layout, err := config.Load(fs)
	if err != nil {
		return reportError(cmd.ErrOrStderr(), err)
	}

	level, err := layout.SlogLevel()
	if err != nil {
		return reportError(cmd.ErrOrStderr(), err)
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	logger.Debug("bootstrap starting",
		"version", buildVersion,
		"commit", buildCommit,
		"built", buildDate,
		"libexec", layout.Libexec,
		"dist", layout.DistDir,
		"runtime", layout.RuntimePath,
	)

	router, err := dispatch.New(fs, layout,
		dispatch.WithHandoff(newHandoff()),
		dispatch.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		dispatch.WithLogger(logger),
	)
	if err != nil {
		return reportError(cmd.ErrOrStderr(), err)
	}

	_, err = router.Dispatch(args)
	return err
}

// reportError prints a setup failure in the [error] convention and returns
// it as exit status 1.
func reportError(w io.Writer, err error) error {
	fmt.Fprintf(w, "[error] %v\n", err)
	return &dispatch.ExitError{Code: 1, Err: err}
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *dispatch.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// isCompletionRequest reports whether name is one of cobra's hidden shell
// completion commands. cobra registers them on every Execute, so they would
// shadow runtime commands of the same name.
func isCompletionRequest(name string) bool {
	return name == cobra.ShellCompRequestCmd || name == cobra.ShellCompNoDescRequestCmd
}

// executeArgs runs cmd with args, routing completion requests to the
// runtime instead of cobra.
func executeArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && isCompletionRequest(args[0]) {
		return run(cmd, args)
	}
	cmd.SetArgs(args)
	return cmd.Execute()
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return executeArgs(NewRootCommand(), os.Args[1:])
}
