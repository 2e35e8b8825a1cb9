package tools_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zjkmxy/ownd/std/log"
	"github.com/zjkmxy/ownd/std/types/lru"
	tu "github.com/zjkmxy/ownd/std/utils/testutils"
	"github.com/zjkmxy/ownd/std/utils/toolutils"
	"github.com/zjkmxy/ownd/tools"
)

func TestRunScript(t *testing.T) {
	tu.SetT(t)
	cache := tu.NoErr(lru.New(2))

	script := `
# fill the cache
set a 1
set b hello world
get b
set c 3
get a
del c
del c
len
`
	var out bytes.Buffer
	require.NoError(t, tools.RunScript(cache, strings.NewReader(script), &out))
	require.Equal(t, "b=hello world\na: not found\nc: removed=true\nc: removed=false\nlen=1\n", out.String())
}

func TestRunScriptInvalid(t *testing.T) {
	tu.SetT(t)
	cache := tu.NoErr(lru.New(2))

	var out bytes.Buffer
	err := tools.RunScript(cache, strings.NewReader("set a 1\nget\n"), &out)
	require.ErrorContains(t, err, "line 2")
}

func TestRcDemo(t *testing.T) {
	var out bytes.Buffer
	tools.RunRcDemo(5, toolutils.StatusPrinter{File: &out, Padding: 8})
	require.Equal(t, strings.Join([]string{
		"       a=5",
		"   a.use=1",
		"       b=5",
		"   a.use=2",
		"   b.use=2",
		" a.valid=false",
		"   a.use=0",
		"   b.use=1",
		"       b=5",
		"   b.use=0",
	}, "\n")+"\n", out.String())
}

func TestCmdRoot(t *testing.T) {
	cmd := tools.CmdLru()
	require.Equal(t, "tools", cmd.GroupID)
	require.NotNil(t, cmd.Flags().Lookup("config"))
	require.Equal(t, "tools", tools.CmdRcDemo().GroupID)
}

func TestConfigLevelApplies(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ownd.yml")
	require.NoError(t, os.WriteFile(file, []byte("log_level: WARN\n"), 0o644))

	cmd := tools.CmdLru()
	cmd.SetIn(strings.NewReader("len\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", file})
	defer log.SetLevel(log.LevelInfo)

	require.NoError(t, cmd.Execute())
	require.Equal(t, log.LevelWarn, log.Default().Level())
}
