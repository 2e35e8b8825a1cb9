package main

import (
	"os"

	"github.com/zjkmxy/ownd/cmd"
)

func main() {
	if err := cmd.CmdOwnd.Execute(); err != nil {
		os.Exit(1)
	}
}
