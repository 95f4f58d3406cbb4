package dispatch

import (
	"errors"
	"fmt"

	"github.com/bbr88/tabdump/bootstrap/internal/archive"
)

// archiveFlag labels the resolved archive for the install script.
const archiveFlag = "--app-archive"

// install resolves the app archive and hands off to the install script as
// `install.sh --app-archive <archive> <args...>`.
func (r *Router) install(args []string) (Outcome, error) {
	path, err := r.resolver.Resolve()
	if errors.Is(err, archive.ErrNotFound) {
		fmt.Fprintf(r.stderr, "[error] prebuilt app archive not found under %s\n", r.resolver.Dir())
		return OutcomeArchiveNotFound, &ExitError{Code: 1, Err: err}
	}
	if err != nil {
		fmt.Fprintf(r.stderr, "[error] %v\n", err)
		return OutcomeError, &ExitError{Code: 1, Err: err}
	}
	r.logger.Debug("resolved app archive", "path", path)

	argv := make([]string, 0, 3+len(args))
	argv = append(argv, r.installScript, archiveFlag, path)
	argv = append(argv, args...)
	return r.exec(OutcomeInstall, r.installScript, argv)
}

// uninstall hands off to the uninstall script with args unchanged.
func (r *Router) uninstall(args []string) (Outcome, error) {
	argv := make([]string, 0, 1+len(args))
	argv = append(argv, r.uninstallScript)
	argv = append(argv, args...)
	return r.exec(OutcomeUninstall, r.uninstallScript, argv)
}
