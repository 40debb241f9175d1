//go:build !windows

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorEntry(t *testing.T) {
	today := todayHeader()

	t.Run("saved buffer is added", func(t *testing.T) {
		env := newTestEnv(t)
		env.setenv("FAKE_ENTRY", "from the editor  \n")
		out := env.run()
		assert.Contains(t, out, "Added 1 line")
		assert.Equal(t, "# LOG\n\n"+today+"\nfrom the editor\n", env.log())
	})

	t.Run("empty buffer changes nothing", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "seed")
		before := env.log()

		out := env.run()
		assert.Contains(t, out, "Nothing to add.")
		assert.Equal(t, before, env.log())
	})

	t.Run("editor failure leaves log alone", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "seed")
		before := env.log()

		env.setenv("FAKE_FAIL", "1")
		env.setenv("FAKE_ENTRY", "never saved")
		_, err := env.runErr()
		require.Error(t, err)
		assert.Equal(t, before, env.log())
	})

	t.Run("invalid buffer rejected", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("add", "seed")
		before := env.log()

		env.setenv("FAKE_ENTRY", "# Title\n")
		out, err := env.runErr()
		require.Error(t, err)
		assert.Contains(t, out, "Error:")
		assert.Equal(t, before, env.log())
	})

	t.Run("scratch file removed", func(t *testing.T) {
		env := newTestEnv(t)
		tmp := t.TempDir()
		env.setenv("TMPDIR", tmp)
		env.setenv("FAKE_ENTRY", "x")
		env.run()

		left, err := filepath.Glob(filepath.Join(tmp, "isl-*.md"))
		require.NoError(t, err)
		assert.Empty(t, left)
	})
}

func TestEditorResolution(t *testing.T) {
	env := newTestEnv(t)
	editor := filepath.Join(env.home, "fake-editor")

	env.setenv("EDITOR", filepath.Join(env.home, "missing-editor"))
	env.setenv("FAKE_ENTRY", "via flag")
	_, err := env.runErr()
	require.Error(t, err, "the broken $EDITOR should be used")

	env.run("--editor", editor)
	assert.Contains(t, env.log(), "via flag")

	env.run("config", "editor.command", editor)
	env.setenv("FAKE_ENTRY", "via config")
	env.run()
	assert.Contains(t, env.log(), "via config")
}

func TestShow(t *testing.T) {
	for _, args := range [][]string{{"--show"}, {"show"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			env := newTestEnv(t)
			env.run("add", "seed")
			env.setenv("FAKE_APPEND", "typo fixed by hand")

			env.run(args...)
			assert.True(t, strings.HasSuffix(env.log(), "seed\ntypo fixed by hand\n"))
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.runErr("frobnicate")
	require.NoError(t, err)
	assert.Equal(t, "Unknown command. Use --help for usage information.\n", out)

	_, statErr := os.Stat(env.logPath())
	assert.True(t, os.IsNotExist(statErr), "unknown command must not create the log")
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	assert.True(t, strings.HasPrefix(env.run("--version"), "isl "))
	assert.Contains(t, env.run("version"), "Build Tag:")
}

func TestHelp(t *testing.T) {
	env := newTestEnv(t)
	for _, args := range [][]string{{"--help"}, {"help"}} {
		out := env.run(args...)
		assert.Contains(t, out, "Usage:")
		assert.Contains(t, out, "add")
	}
}

func TestDataDirectory(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		env := newTestEnv(t)
		assert.Equal(t, env.logPath()+"\n", env.run("path"))
	})

	t.Run("flag", func(t *testing.T) {
		env := newTestEnv(t)
		dir := t.TempDir()
		env.run("--dir", dir, "add", "elsewhere")

		data, err := os.ReadFile(filepath.Join(dir, "isl", "LOG.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "elsewhere")
	})

	t.Run("environment", func(t *testing.T) {
		env := newTestEnv(t)
		dir := t.TempDir()
		env.setenv("ISL_DIR", dir)
		assert.Equal(t, filepath.Join(dir, "isl", "LOG.md")+"\n", env.run("path"))
	})

	t.Run("config", func(t *testing.T) {
		env := newTestEnv(t)
		dir := t.TempDir()
		env.run("config", "document.dir", dir)
		assert.Equal(t, filepath.Join(dir, "isl", "LOG.md")+"\n", env.run("path"))
	})
}

func TestInvalidOutputFormat(t *testing.T) {
	env := newTestEnv(t)
	out, err := env.runErr("-o", "yaml", "path")
	require.Error(t, err)
	assert.Contains(t, out, "invalid output format")
}
