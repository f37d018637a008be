package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOpts struct {
	verbose bool
}

var rootopts = rootOpts{}

var rootCmd = &cobra.Command{
	Use:   "tspsolve",
	Short: "tspsolve finds short round trips through a set of cities",
	Long:  `Solves travelling salesperson scenarios with a time-bounded branch-and-bound search, seeded by a random tour`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if rootopts.verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&rootopts.verbose, "verbose", "v", false, "log search progress")
	rootCmd.AddCommand(NewSolveCmd())
	rootCmd.AddCommand(NewGenerateCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
