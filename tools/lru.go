package tools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zjkmxy/ownd/config"
	"github.com/zjkmxy/ownd/std/log"
	"github.com/zjkmxy/ownd/std/types/lru"
)

type LruTool struct {
	configFile string
}

func CmdLru() *cobra.Command {
	lt := LruTool{}

	cmd := &cobra.Command{
		GroupID: "tools",
		Use:     "lru [SCRIPT]",
		Short:   "Run a cache script against a sharded LRU cache",
		Long: `Run a cache script against a sharded LRU cache.

Each script line is one command:
  set KEY VALUE   store VALUE under KEY
  get KEY         print the value stored under KEY
  del KEY         remove KEY
  len             print the number of entries
The script is read from stdin when no file is given.`,
		Args:    cobra.MaximumNArgs(1),
		Example: `  echo "set a 1\nget a" | ownd lru --config ownd.yml`,
		RunE:    lt.run,
	}

	cmd.Flags().StringVarP(&lt.configFile, "config", "c", "", "YAML configuration file")
	return cmd
}

func (lt *LruTool) String() string {
	return "lru"
}

func (lt *LruTool) run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, lt.configFile)
	if err != nil {
		return err
	}

	cache, err := cfg.NewCache()
	if err != nil {
		return err
	}
	log.Info(lt, "Cache ready", "shards", cfg.Cache.Shards, "capacity", cache.Capacity())

	input := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("unable to open script: %w", err)
		}
		defer f.Close()
		input = f
	}

	return RunScript(cache, input, cmd.OutOrStdout())
}

// RunScript executes cache commands read from r and writes results to w.
// Blank lines and lines starting with # are skipped.
func RunScript(store lru.Store, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch {
		case fields[0] == "set" && len(fields) >= 3:
			store.Set(fields[1], strings.Join(fields[2:], " "))
		case fields[0] == "get" && len(fields) == 2:
			if v, ok := store.Get(fields[1]); ok {
				fmt.Fprintf(w, "%s=%s\n", fields[1], v)
			} else {
				fmt.Fprintf(w, "%s: not found\n", fields[1])
			}
		case fields[0] == "del" && len(fields) == 2:
			fmt.Fprintf(w, "%s: removed=%t\n", fields[1], store.Remove(fields[1]))
		case fields[0] == "len" && len(fields) == 1:
			fmt.Fprintf(w, "len=%d\n", store.Len())
		default:
			return fmt.Errorf("line %d: invalid command %q", lineNo, line)
		}
	}
	return scanner.Err()
}

// loadConfig reads the configuration file, if any. The level from the file
// applies unless --log-level was given explicitly.
func loadConfig(cmd *cobra.Command, file string) (*config.Config, error) {
	if file == "" {
		cfg := config.DefaultConfig()
		return cfg, cfg.Parse()
	}

	cfg, err := config.Load(file)
	if err != nil {
		return nil, err
	}
	if flag := cmd.Flag("log-level"); flag == nil || !flag.Changed {
		log.SetLevel(cfg.Level())
	}
	return cfg, nil
}
