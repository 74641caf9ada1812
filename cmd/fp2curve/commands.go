package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/f3rmion/fp2/primefield"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSolveCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "list every solution of y^2 = x^3 + ax + b over F_p^2.",
		Long: `Exhaustively search F_p^2 x F_p^2 for the solutions of y^2 = x^3 + ax + b
and print them with their count and a BLAKE2b digest of the set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := prepare(cfg, io.Discard)
			if err != nil {
				return err
			}
			return r.solve(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&cfg.parallel, "parallel", 1, "number of workers for the search")
	return cmd
}

func newAddCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add P Q",
		Short: "add two rational points.",
		Long: `Add two points of y^2 = x^3 + ax + b over F_p^2. Each point is written
xr,xi,yr,yi for x = xr + xi*i and y = yr + yi*i. Both points must lie on the curve.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			q, err := parsePoint(args[1])
			if err != nil {
				return err
			}
			r, err := prepare(cfg, io.Discard)
			if err != nil {
				return err
			}
			return r.add(cmd.Context(), cfg, p, q, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&cfg.parallel, "parallel", 1, "number of workers for the membership search")
	return cmd
}

func newCheckCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "validate the modulus and the curve discriminant.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			modErr := primefield.CheckModulus(cfg.p)
			if modErr != nil {
				for _, e := range unjoin(modErr) {
					fmt.Fprintf(out, "modulus: %v\n", e)
				}
			} else {
				fmt.Fprintf(out, "modulus: %d is a prime congruent to 3 mod 4\n", cfg.p)
			}
			r, ok := runners[cfg.p]
			if !ok {
				if modErr != nil {
					return modErr
				}
				return fmt.Errorf("unsupported prime %d, choose one of %v", cfg.p, supportedPrimes())
			}
			return r.check(cfg, out)
		},
	}
}

// prepare resolves the runner for cfg.p and validates the modulus and the
// curve. Problems are logged as warnings unless cfg.strict is set.
func prepare(cfg *config, out io.Writer) (runner, error) {
	var errs []error
	if err := primefield.CheckModulus(cfg.p); err != nil {
		errs = append(errs, unjoin(err)...)
	}
	r, err := lookup(cfg)
	if err != nil {
		return nil, errors.Join(append(errs, err)...)
	}
	if err := r.check(cfg, out); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return r, nil
	}
	if cfg.strict {
		return nil, errors.Join(errs...)
	}
	for _, e := range errs {
		log.Warn(e)
	}
	return r, nil
}

// unjoin splits an error built with errors.Join into its parts.
func unjoin(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

// parsePoint parses "xr,xi,yr,yi".
func parsePoint(s string) ([4]uint64, error) {
	var c [4]uint64
	parts := strings.Split(s, ",")
	if len(parts) != len(c) {
		return c, fmt.Errorf("point %q: want xr,xi,yr,yi", s)
	}
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return c, fmt.Errorf("point %q: %w", s, err)
		}
		c[i] = v
	}
	return c, nil
}
