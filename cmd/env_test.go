//go:build !windows

// CLI integration tests build the isl binary once and drive it as a user
// would: arguments in, stdout/stderr and LOG.md out. HOME and the XDG
// directories point into a temp dir, and $EDITOR is a shell script that
// writes $FAKE_ENTRY into the file it is given (or appends $FAKE_APPEND).

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jpl-au/isl/internal/journal"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the isl binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "isl-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}
		binaryPath = filepath.Join(tmpDir, "isl")

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

const fakeEditor = `#!/bin/sh
if [ -n "$FAKE_APPEND" ]; then
	printf '%s\n' "$FAKE_APPEND" >> "$1"
	exit 0
fi
if [ -n "$FAKE_FAIL" ]; then
	exit 3
fi
printf '%s' "$FAKE_ENTRY" > "$1"
`

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	home   string
	binary string
	extra  []string // additional environment for the next runs
}

// newTestEnv creates an isolated HOME with a fake editor.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	binary := buildBinary(t)
	home := t.TempDir()

	editor := filepath.Join(home, "fake-editor")
	require.NoError(t, os.WriteFile(editor, []byte(fakeEditor), 0755))

	return &testEnv{
		t:      t,
		home:   home,
		binary: binary,
		extra:  []string{"EDITOR=" + editor},
	}
}

// setenv adds a variable to the environment of subsequent runs.
func (e *testEnv) setenv(key, value string) {
	e.extra = append(e.extra, key+"="+value)
}

func (e *testEnv) environ() []string {
	var env []string
	for _, kv := range os.Environ() {
		switch strings.SplitN(kv, "=", 2)[0] {
		case "HOME", "XDG_DATA_HOME", "XDG_CONFIG_HOME", "ISL_DIR", "VISUAL", "EDITOR":
			continue
		}
		env = append(env, kv)
	}
	env = append(env,
		"HOME="+e.home,
		"XDG_DATA_HOME="+filepath.Join(e.home, "data"),
		"XDG_CONFIG_HOME="+filepath.Join(e.home, "config"),
	)
	return append(env, e.extra...)
}

// run executes isl with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("isl %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes isl and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.home
	cmd.Env = e.environ()
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// runStdout executes isl and returns stdout only.
func (e *testEnv) runStdout(args ...string) string {
	e.t.Helper()
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.home
	cmd.Env = e.environ()
	out, err := cmd.Output()
	if err != nil {
		e.t.Fatalf("isl %v failed: %v", args, err)
	}
	return string(out)
}

// runStdin executes isl with stdin input.
func (e *testEnv) runStdin(input string, args ...string) string {
	e.t.Helper()
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.home
	cmd.Env = e.environ()
	cmd.Stdin = strings.NewReader(input)
	out, err := cmd.CombinedOutput()
	if err != nil {
		e.t.Fatalf("isl %v failed: %v\noutput: %s", args, err, out)
	}
	return string(out)
}

// logPath is where the log lives for the default data directory.
func (e *testEnv) logPath() string {
	return filepath.Join(e.home, "data", "isl", "LOG.md")
}

// log returns the log file content.
func (e *testEnv) log() string {
	e.t.Helper()
	data, err := os.ReadFile(e.logPath())
	require.NoError(e.t, err)
	return string(data)
}

// writeLog replaces the log file content.
func (e *testEnv) writeLog(content string) {
	e.t.Helper()
	require.NoError(e.t, os.MkdirAll(filepath.Dir(e.logPath()), 0755))
	require.NoError(e.t, os.WriteFile(e.logPath(), []byte(content), 0644))
}

// todayHeader is the day header isl files entries under right now.
func todayHeader() string {
	return journal.DayHeader(time.Now())
}
