// Package branding provides compile-time identity values for the bootstrap.
//
// Packagers edit branding.yaml in this directory before building; Go's
// //go:embed bakes it into the binary. Every user-facing product name,
// environment prefix and archive name is derived from these values.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	EnvPrefix     string `yaml:"env_prefix"`
	RuntimeDir    string `yaml:"runtime_dir"`
	ArchivePrefix string `yaml:"archive_prefix"`
	InitExample   string `yaml:"init_example"`
}

// ArchiveExt is the extension shared by every distribution archive.
const ArchiveExt = ".tar.gz"

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:       "tabdump",
			DisplayName:   "TabDump",
			Description:   "Runtime installer and CLI bootstrap for browser tab dumps",
			EnvPrefix:     "TABDUMP",
			RuntimeDir:    ".local/bin",
			ArchivePrefix: "tabdump-app",
			InitExample:   "init --yes --vault-inbox ~/obsidian/Inbox/",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the command name (e.g., "tabdump").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "TabDump").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "TABDUMP").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// RuntimeDir returns the directory, relative to $HOME, that holds the
// installed runtime executable (e.g., ".local/bin").
func RuntimeDir() string { load(); return defaults.RuntimeDir }

// InitExample returns the init invocation suggested to users, without the
// CLI name (e.g., "init --yes --vault-inbox ~/obsidian/Inbox/").
func InitExample() string { load(); return defaults.InitExample }

// CanonicalArchive returns the version-less archive file name
// (e.g., "tabdump-app.tar.gz").
func CanonicalArchive() string { load(); return defaults.ArchivePrefix + ArchiveExt }

// VersionedArchivePrefix returns the part of a versioned archive name that
// precedes the version token (e.g., "tabdump-app-v").
func VersionedArchivePrefix() string { load(); return defaults.ArchivePrefix + "-v" }

// VersionedArchivePattern returns the filepath.Match pattern for versioned
// archives (e.g., "tabdump-app-v*.tar.gz").
func VersionedArchivePattern() string { return VersionedArchivePrefix() + "*" + ArchiveExt }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("libexec") → "TABDUMP_LIBEXEC".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
