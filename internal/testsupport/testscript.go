package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	pomoPath  string
	buildErr  error
)

// fakeNotifier appends each invocation's arguments to $NOTIFY_LOG, one line
// per call, and fails when $NOTIFY_FAIL is set.
const fakeNotifier = `#!/bin/sh
if [ -n "$NOTIFY_FAIL" ]; then
	echo "notification daemon unavailable" >&2
	exit 1
fi
echo "$*" >> "$NOTIFY_LOG"
`

// BuildPomo builds the pomo binary once and returns its path.
func BuildPomo(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "pomo-bin-")
		if err != nil {
			buildErr = err
			return
		}

		pomoPath = filepath.Join(binDir, "pomo")
		cmd := exec.Command("go", "build", "-o", pomoPath, "./cmd/pomo")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build pomo: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return pomoPath
}

// WriteFakeNotifier installs a notify-send stand-in in dir and returns its path.
func WriteFakeNotifier(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create fake notifier dir: %w", err)
	}
	path := filepath.Join(dir, "notify-send")
	if err := os.WriteFile(path, []byte(fakeNotifier), 0o755); err != nil {
		return "", fmt.Errorf("write fake notifier: %w", err)
	}
	return path, nil
}

// SetupScriptEnv configures common environment variables for testscript.
// The fake notify-send is put first on PATH and logs to $WORK/notify.log.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("POMO", BuildPomo(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("XDG_CONFIG_HOME", "")
	env.Setenv("NO_COLOR", "1")

	binDir := filepath.Join(env.WorkDir, "bin")
	if _, err := WriteFakeNotifier(binDir); err != nil {
		return err
	}
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+env.Getenv("PATH"))
	env.Setenv("NOTIFY_LOG", filepath.Join(env.WorkDir, "notify.log"))
	return nil
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
