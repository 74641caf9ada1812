package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"slices"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled in by the linker, but not when installing via "go
// install".
var Version string

// config holds the curve parameters shared by every subcommand.
type config struct {
	p        uint64
	a, b     int64
	strict   bool
	parallel int
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:           "fp2curve",
		Short:         "Elliptic curves y^2 = x^3 + ax + b over F_p^2.",
		Long:          "Enumerate the rational points of a short Weierstrass curve over F_p^2 = F_p[i]/(i^2+1) and add them.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if GetFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if GetFlag(cmd, "version") {
				cmd.Printf("fp2curve %s\n", version())
				return nil
			}
			return cmd.Help()
		},
	}

	root.Flags().Bool("version", false, "report version of this executable")
	root.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	root.PersistentFlags().Uint64VarP(&cfg.p, "prime", "p", 7, fmt.Sprintf("field characteristic, one of %v", supportedPrimes()))
	root.PersistentFlags().Int64VarP(&cfg.a, "a", "a", 0, "curve coefficient a")
	root.PersistentFlags().Int64VarP(&cfg.b, "b", "b", 0, "curve coefficient b")
	root.PersistentFlags().BoolVar(&cfg.strict, "strict", false, "reject invalid moduli and singular curves instead of warning")

	root.AddCommand(newSolveCmd(cfg), newAddCmd(cfg), newCheckCmd(cfg))
	return root
}

func version() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}
	return "(unknown version)"
}

// GetFlag gets an expected boolean flag, or exits if it is missing.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(2)
	}
	return r
}

// lookup returns the runner for cfg.p.
func lookup(cfg *config) (runner, error) {
	r, ok := runners[cfg.p]
	if !ok {
		return nil, fmt.Errorf("unsupported prime %d, choose one of %v", cfg.p, supportedPrimes())
	}
	return r, nil
}

func supportedPrimes() []uint64 {
	ps := make([]uint64, 0, len(runners))
	for p := range runners {
		ps = append(ps, p)
	}
	slices.Sort(ps)
	return ps
}
