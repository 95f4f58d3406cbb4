package dispatch

import (
	"io"
	"strings"
	"text/template"

	"github.com/bbr88/tabdump/bootstrap/internal/branding"
)

// Command names handled by the bootstrap itself.
const (
	CommandInit      = "init"
	CommandUninstall = "uninstall"
	CommandHelp      = "help"
)

// helpNames are the spellings that print usage.
var helpNames = []string{CommandHelp, "-h", "--help"}

type bootstrapCommand struct {
	Name    string
	Args    string
	Summary string
}

var bootstrapCommands = []bootstrapCommand{
	{CommandInit, "[install-options]", "Install " + branding.DisplayName() + " runtime into your user profile."},
	{CommandUninstall, "[uninstall-options]", "Remove " + branding.DisplayName() + " runtime from your user profile."},
}

// RuntimeCommands lists the subcommands the installed runtime provides. The
// bootstrap does not enforce this set; it only documents it.
var RuntimeCommands = []string{
	"status",
	"mode",
	"config",
	"count",
	"now",
	"permissions",
	"run",
	"open",
	"logs",
	CommandHelp,
}

var usageExamples = []string{
	branding.InitExample(),
	"status",
	"now --close",
	"uninstall --yes",
}

var usageTemplate = template.Must(template.New("usage").Parse(`Usage:
{{- range .Bootstrap}}
  {{$.CLI}} {{.Name}} {{.Args}}
{{- end}}
  {{.CLI}} [{{.Runtime}}] [args...]

Bootstrap:
{{- range .Bootstrap}}
  {{printf "%-12s" .Name}}{{.Summary}}
{{- end}}

After initialization, non-bootstrap subcommands are delegated to:
  {{.RuntimePath}}

Examples:
{{- range .Examples}}
  {{$.CLI}} {{.}}
{{- end}}
`))

// RenderUsage writes the bootstrap usage text. The output depends only on
// compiled-in values, so repeated calls produce identical bytes.
func RenderUsage(w io.Writer) error {
	return usageTemplate.Execute(w, struct {
		CLI         string
		Bootstrap   []bootstrapCommand
		Runtime     string
		RuntimePath string
		Examples    []string
	}{
		CLI:         branding.CLIName(),
		Bootstrap:   bootstrapCommands,
		Runtime:     strings.Join(RuntimeCommands, "|"),
		RuntimePath: "~/" + branding.RuntimeDir() + "/" + branding.CLIName(),
		Examples:    usageExamples,
	})
}
