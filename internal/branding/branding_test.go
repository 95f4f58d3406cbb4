package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"cli name", CLIName(), "tabdump"},
		{"display name", DisplayName(), "TabDump"},
		{"env prefix", EnvPrefix(), "TABDUMP"},
		{"runtime dir", RuntimeDir(), ".local/bin"},
		{"canonical archive", CanonicalArchive(), "tabdump-app.tar.gz"},
		{"versioned prefix", VersionedArchivePrefix(), "tabdump-app-v"},
		{"versioned pattern", VersionedArchivePattern(), "tabdump-app-v*.tar.gz"},
		{"init example", InitExample(), "init --yes --vault-inbox ~/obsidian/Inbox/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("dist_dir"); got != "TABDUMP_DIST_DIR" {
		t.Errorf("EnvVar(dist_dir) = %q, want TABDUMP_DIST_DIR", got)
	}
}
