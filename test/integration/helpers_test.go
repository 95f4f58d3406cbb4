//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths to an isolated Homebrew-style prefix and home.
type testEnv struct {
	Libexec     string // <prefix>/libexec
	DistDir     string // <libexec>/dist
	HomeDir     string // $HOME
	RuntimePath string // $HOME/.local/bin/tabdump
	ArgsLog     string // file each fake script appends its argv to
}

// setupTestEnv creates a prefix with fake install/uninstall scripts and
// points TABDUMP_* and HOME at it. Env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake delegates are shell scripts")
	}

	prefix := t.TempDir()
	env := &testEnv{
		Libexec: filepath.Join(prefix, "libexec"),
		HomeDir: t.TempDir(),
		ArgsLog: filepath.Join(t.TempDir(), "argv.log"),
	}
	env.DistDir = filepath.Join(env.Libexec, "dist")
	env.RuntimePath = filepath.Join(env.HomeDir, ".local", "bin", "tabdump")

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("TABDUMP_LIBEXEC", env.Libexec)
	for _, key := range []string{"DIST_DIR", "INSTALL_SCRIPT", "UNINSTALL_SCRIPT", "RUNTIME_PATH", "ARCHIVE_ORDER", "LOG_LEVEL"} {
		t.Setenv("TABDUMP_"+key, "")
	}

	if err := os.MkdirAll(env.DistDir, 0o755); err != nil {
		t.Fatalf("creating dist: %v", err)
	}

	// install.sh plays the external installer: records argv, then drops an
	// executable runtime into the user profile.
	writeScript(t, filepath.Join(env.Libexec, "scripts", "install.sh"), `
printf '%s\n' "install $*" >> "`+env.ArgsLog+`"
mkdir -p "$HOME/.local/bin"
cat > "$HOME/.local/bin/tabdump" <<'RUNTIME'
#!/bin/sh
printf '%s\n' "runtime $*" >> "`+env.ArgsLog+`"
case "$1" in
  fail) exit 7 ;;
esac
exit 0
RUNTIME
chmod 0755 "$HOME/.local/bin/tabdump"
`)
	writeScript(t, filepath.Join(env.Libexec, "scripts", "uninstall.sh"), `
printf '%s\n' "uninstall $*" >> "`+env.ArgsLog+`"
rm -f "$HOME/.local/bin/tabdump"
`)
	return env
}

// writeScript creates an executable /bin/sh script.
func writeScript(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\nset -e\n"+body), 0o755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readLog returns the argv lines recorded by the fake delegates.
func readLog(t *testing.T, env *testEnv) []string {
	t.Helper()
	data, err := os.ReadFile(env.ArgsLog)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading argv log: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}
