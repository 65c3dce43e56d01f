package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/fulgidus/basiccalc/pkg/calc"
)

var (
	// Version information - set at build time
	Version   = "0.1.0"
	GitCommit = "dev"
	BuildDate = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Display the version, git commit and build date of basiccalc, along with
the integer width its arithmetic uses.`,
		// Version must work even when the config file is unreadable.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "basiccalc %s (%s, built %s)\n", Version, GitCommit, BuildDate)
			fmt.Fprintf(out, "  Arithmetic:  uint32, wraps modulo 2^32\n")
			fmt.Fprintf(out, "  Exact up to: %d! = %d\n", calc.MaxExactFactorial, calc.Factorial(calc.MaxExactFactorial))
			fmt.Fprintf(out, "  Runtime:     %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
