package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bbr88/tabdump/bootstrap/internal/branding"
	"github.com/bbr88/tabdump/bootstrap/internal/platform"
	"github.com/bbr88/tabdump/bootstrap/internal/runtime"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	fileName = "bootstrap"
	fileType = "yaml"
)

// Configuration keys. Each is also read from TABDUMP_<KEY>.
const (
	KeyLibexec         = "libexec"
	KeyDistDir         = "dist_dir"
	KeyInstallScript   = "install_script"
	KeyUninstallScript = "uninstall_script"
	KeyRuntimePath     = "runtime_path"
	KeyArchiveOrder    = "archive_order"
	KeyLogLevel        = "log_level"
)

// Default values for keys that are not path-derived.
const (
	DefaultArchiveOrder = "lexical"
	DefaultLogLevel     = "warn"
)

// Layout is the resolved set of paths and options for one invocation.
type Layout struct {
	Libexec         string
	DistDir         string
	InstallScript   string
	UninstallScript string
	// RuntimePath is empty when the home directory cannot be determined.
	RuntimePath  string
	ArchiveOrder string
	LogLevel     string
}

// FilePath returns the optional config file inside libexec.
func FilePath(libexec string) string {
	return filepath.Join(libexec, fileName+"."+fileType)
}

// DefaultLibexec returns <dir of the resolved executable>/../libexec.
func DefaultLibexec() (string, error) {
	dir, err := platform.ExecutableDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(dir), "libexec"), nil
}

// Load resolves the Layout, reading the optional config file through fs.
func Load(fs afero.Fs) (*Layout, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	v.SetDefault(KeyArchiveOrder, DefaultArchiveOrder)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	libexec := v.GetString(KeyLibexec)
	if libexec == "" {
		var err error
		if libexec, err = DefaultLibexec(); err != nil {
			return nil, fmt.Errorf("resolving libexec directory: %w", err)
		}
	}

	if err := readFile(fs, v, FilePath(libexec)); err != nil {
		return nil, err
	}

	layout := &Layout{
		Libexec:         libexec,
		DistDir:         pathOr(v, KeyDistDir, libexec, "dist"),
		InstallScript:   pathOr(v, KeyInstallScript, libexec, filepath.Join("scripts", "install.sh")),
		UninstallScript: pathOr(v, KeyUninstallScript, libexec, filepath.Join("scripts", "uninstall.sh")),
		RuntimePath:     v.GetString(KeyRuntimePath),
		ArchiveOrder:    strings.ToLower(v.GetString(KeyArchiveOrder)),
		LogLevel:        strings.ToLower(v.GetString(KeyLogLevel)),
	}
	if layout.RuntimePath == "" {
		// Without a home directory nothing can be installed; leave the
		// path empty so the runtime reads as uninitialized.
		if p, err := runtime.DefaultPath(); err == nil {
			layout.RuntimePath = p
		}
	}
	return layout, nil
}

// readFile validates and loads the config file when it exists.
func readFile(fs afero.Fs, v *viper.Viper, path string) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	issues, err := Validate(data)
	if err != nil {
		return fmt.Errorf("validating config file %s: %w", path, err)
	}
	if len(issues) > 0 {
		return &InvalidFileError{Path: path, Issues: issues}
	}

	v.SetConfigType(fileType)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}

// pathOr returns the configured path for key, resolved against libexec when
// relative, or libexec/def when the key is unset.
func pathOr(v *viper.Viper, key, libexec, def string) string {
	p := v.GetString(key)
	if p == "" {
		p = def
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(libexec, p)
}

// SlogLevel parses the layout's log level.
func (l *Layout) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q: %w", l.LogLevel, err)
	}
	return level, nil
}
