package dispatch

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderUsage(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderUsage(&buf); err != nil {
		t.Fatalf("RenderUsage: %v", err)
	}
	out := buf.String()

	want := []string{
		"Usage:\n  tabdump init [install-options]\n  tabdump uninstall [uninstall-options]\n",
		"  tabdump [status|mode|config|count|now|permissions|run|open|logs|help] [args...]\n",
		"Bootstrap:\n  init        Install TabDump runtime into your user profile.\n",
		"  uninstall   Remove TabDump runtime from your user profile.\n",
		"After initialization, non-bootstrap subcommands are delegated to:\n  ~/.local/bin/tabdump\n",
		"Examples:\n  tabdump init --yes --vault-inbox ~/obsidian/Inbox/\n",
		"  tabdump uninstall --yes\n",
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("usage missing %q\n--- got ---\n%s", w, out)
		}
	}
}

func TestRenderUsage_ListsEveryRuntimeCommand(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderUsage(&buf); err != nil {
		t.Fatal(err)
	}
	for _, cmd := range RuntimeCommands {
		if !strings.Contains(buf.String(), cmd) {
			t.Errorf("usage does not mention runtime command %q", cmd)
		}
	}
}
