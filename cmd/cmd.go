package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zjkmxy/ownd/std/log"
	"github.com/zjkmxy/ownd/std/utils"
	"github.com/zjkmxy/ownd/tools"
)

const banner = `
                            _
   _____      ___ __   __| |
  / _ \ \ /\ / / '_ \ / _  |
 | (_) \ V  V /| | | | (_| |
  \___/ \_/\_/ |_| |_|\____|

Shared and exclusive ownership toolkit
`

var logLevel string

var CmdOwnd = &cobra.Command{
	Use:     "ownd",
	Short:   "Shared and exclusive ownership toolkit",
	Long:    banner[1:],
	Version: utils.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logLevel == "" {
			return nil
		}
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	cobra.EnableCommandSorting = false
	CmdOwnd.Root().CompletionOptions.HiddenDefaultCmd = true
	CmdOwnd.PersistentFlags().BoolP("help", "h", false, "Print usage")
	CmdOwnd.PersistentFlags().Lookup("help").Hidden = true
	CmdOwnd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (TRACE, DEBUG, INFO, WARN, ERROR)")

	CmdOwnd.AddGroup(&cobra.Group{ID: "tools", Title: "Tools"})
	CmdOwnd.AddCommand(tools.CmdLru())
	CmdOwnd.AddCommand(tools.CmdRcDemo())
}
