// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mpcheck verifies the consistency of element kernels, material models and boundary conditions
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cpmech/mpfem/bcs"
	"github.com/cpmech/mpfem/ele"
	"github.com/cpmech/mpfem/inp"
	"github.com/cpmech/mpfem/mdl"
	"github.com/cpmech/mpfem/shp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	// kernels and models
	_ "github.com/cpmech/mpfem/ele/chmech"
	_ "github.com/cpmech/mpfem/ele/fracture"
	_ "github.com/cpmech/mpfem/ele/solid"
	_ "github.com/cpmech/mpfem/mdl/chmech"
	_ "github.com/cpmech/mpfem/mdl/elastic"
	_ "github.com/cpmech/mpfem/mdl/fracture"
)

var (
	verbose  bool
	nworkers int
	logger   *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mpcheck",
	Short: "Consistency checks of multiphysics Gauss point kernels",
	Long: `mpcheck compares analytical element Jacobians with central differences of
element residuals for random states of each verification case.

Run "mpcheck check" for the built-in cases or "mpcheck check cases.yaml" for
cases given in a file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered kernels, models, boundary conditions and shapes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "kernels:    %s\n", strings.Join(ele.Names(), ", "))
		fmt.Fprintf(w, "models:     %s\n", strings.Join(mdl.Names(), ", "))
		fmt.Fprintf(w, "conditions: %s\n", strings.Join(bcs.Names(), ", "))
		fmt.Fprintf(w, "shapes:     %s\n", strings.Join(shp.Types(), ", "))
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [cases.yaml]",
	Short: "Run consistency checks",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cases := inp.DefaultCases()
		if len(args) == 1 {
			var err error
			if cases, err = inp.ReadCases(args[0]); err != nil {
				return err
			}
		}
		if nworkers > 0 {
			cases.Nworkers = nworkers
		}
		return check(cmd.Context(), cmd.OutOrStdout(), cases, logger)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	checkCmd.Flags().IntVarP(&nworkers, "nworkers", "n", 0, "Max number of concurrent cases (overrides the cases file)")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("mpcheck failed", zap.Error(err))
			_ = logger.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
