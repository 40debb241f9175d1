//go:build !windows

package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatCommand(t *testing.T) {
	const doc = "# LOG\n\n## 2024-01-02\nb\n\n## 2024-01-01\na\n"

	env := newTestEnv(t)
	env.writeLog(doc)

	t.Run("whole log raw when piped", func(t *testing.T) {
		assert.Equal(t, doc, env.runStdout("cat"))
	})

	t.Run("one day", func(t *testing.T) {
		assert.Equal(t, "## 2024-01-01\na\n", env.runStdout("cat", "--day", "2024-01-01"))
	})

	t.Run("newest days", func(t *testing.T) {
		assert.Equal(t, "# LOG\n\n## 2024-01-02\nb\n\n", env.runStdout("cat", "--last", "1"))
	})

	t.Run("window excludes old days", func(t *testing.T) {
		assert.Equal(t, "# LOG\n\n", env.runStdout("cat", "--since", "1d"))
	})

	t.Run("bad window", func(t *testing.T) {
		_, err := env.runErr("cat", "--since", "a while")
		require.Error(t, err)
	})

	t.Run("line numbers", func(t *testing.T) {
		out := env.runStdout("cat", "--day", "2024-01-01", "-n")
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "     6\t## 2024-01-01", lines[0])
		assert.Equal(t, "     7\ta", lines[1])
	})

	t.Run("missing day", func(t *testing.T) {
		out, err := env.runErr("cat", "--day", "1999-01-01")
		require.Error(t, err)
		assert.Contains(t, out, "no entries for day")
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := env.runErr("cat", "--day", "yesterday")
		require.Error(t, err)
	})

	t.Run("json", func(t *testing.T) {
		var got map[string]string
		require.NoError(t, json.Unmarshal([]byte(env.runStdout("cat", "-o", "json", "--day", "2024-01-02")), &got))
		assert.Equal(t, "2024-01-02", got["day"])
		assert.Equal(t, "## 2024-01-02\nb\n\n", got["content"])
	})
}

func TestDaysCommand(t *testing.T) {
	env := newTestEnv(t)
	env.writeLog("# LOG\n\n## 2024-01-02\nb\n\n## 2024-01-01\na\n")

	assert.Equal(t, "2024-01-02\n2024-01-01\n", env.runStdout("days"))

	long := env.runStdout("days", "-l")
	assert.True(t, strings.HasPrefix(long, "DAY "))
	assert.Contains(t, long, "2024-01-01       6      1")

	var days []map[string]any
	require.NoError(t, json.Unmarshal([]byte(env.runStdout("days", "-o", "json")), &days))
	require.Len(t, days, 2)
	assert.Equal(t, "2024-01-02", days[0]["date"])
}
