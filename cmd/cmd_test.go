package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zjkmxy/ownd/cmd"
	"github.com/zjkmxy/ownd/std/log"
)

func TestRootRunsLruScript(t *testing.T) {
	var out bytes.Buffer
	cmd.CmdOwnd.SetOut(&out)
	cmd.CmdOwnd.SetIn(strings.NewReader("set k v\nget k\n"))
	cmd.CmdOwnd.SetArgs([]string{"lru", "--log-level", "ERROR"})
	defer log.SetLevel(log.LevelInfo)

	require.NoError(t, cmd.CmdOwnd.Execute())
	require.Equal(t, "k=v\n", out.String())
	require.Equal(t, log.LevelError, log.Default().Level())
}

func TestRootRejectsBadLevel(t *testing.T) {
	var out bytes.Buffer
	cmd.CmdOwnd.SetOut(&out)
	cmd.CmdOwnd.SetErr(&out)
	cmd.CmdOwnd.SetArgs([]string{"rc-demo", "--log-level", "LOUD"})
	require.ErrorIs(t, cmd.CmdOwnd.Execute(), log.ErrInvalidLevel)
}

func TestFlagLevelOverridesConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ownd.yml")
	require.NoError(t, os.WriteFile(file, []byte("log_level: TRACE\n"), 0o644))

	var out bytes.Buffer
	cmd.CmdOwnd.SetOut(&out)
	cmd.CmdOwnd.SetIn(strings.NewReader("len\n"))
	cmd.CmdOwnd.SetArgs([]string{"lru", "--config", file, "--log-level", "ERROR"})
	defer log.SetLevel(log.LevelInfo)

	require.NoError(t, cmd.CmdOwnd.Execute())
	require.Equal(t, log.LevelError, log.Default().Level())
}
