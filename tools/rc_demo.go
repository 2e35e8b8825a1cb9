package tools

import (
	"github.com/spf13/cobra"
	"github.com/zjkmxy/ownd/std/log"
	"github.com/zjkmxy/ownd/std/types/rc"
	"github.com/zjkmxy/ownd/std/utils/toolutils"
)

type RcDemo struct {
	value int
}

func CmdRcDemo() *cobra.Command {
	rd := RcDemo{}

	cmd := &cobra.Command{
		GroupID: "tools",
		Use:     "rc-demo",
		Short:   "Walk through shared pointer ownership and print use counts",
		Args:    cobra.NoArgs,
		Example: `  ownd rc-demo --value 5 --log-level TRACE`,
		Run:     rd.run,
	}

	cmd.Flags().IntVar(&rd.value, "value", 5, "Value stored in the shared object")
	return cmd
}

func (rd *RcDemo) String() string {
	return "rc-demo"
}

func (rd *RcDemo) run(cmd *cobra.Command, _ []string) {
	p := toolutils.StatusPrinter{File: cmd.OutOrStdout(), Padding: 12}
	RunRcDemo(rd.value, p)
	log.Debug(rd, "Demo finished")
}

// RunRcDemo makes a shared value, clones it, resets the original and
// prints the use counts after each step.
func RunRcDemo(value int, p toolutils.StatusPrinter) {
	a := rc.Make(value)
	p.Print("a", a.Load())
	p.Print("a.use", a.UseCount())

	b := a.Clone()
	p.Print("b", b.Load())
	p.Print("a.use", a.UseCount())
	p.Print("b.use", b.UseCount())

	a.Reset()
	p.Print("a.valid", a.Valid())
	p.Print("a.use", a.UseCount())
	p.Print("b.use", b.UseCount())
	p.Print("b", b.Load())

	b.Release()
	p.Print("b.use", b.UseCount())
}
