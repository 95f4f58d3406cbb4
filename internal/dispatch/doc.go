// Package dispatch is the bootstrap's command router.
//
// Only the first argument is inspected. `init` resolves the app archive and
// hands off to the install script, `uninstall` hands off to the uninstall
// script, `help`, `-h`, `--help` or no argument print usage, and every
// other name is forwarded to the installed runtime when present. Each
// Dispatch call ends in exactly one Outcome; handoffs are terminal, so in
// production a successful handoff never returns to the router.
package dispatch
