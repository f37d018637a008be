package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bnbtsp/scenario"
	"github.com/katalvlaran/bnbtsp/tsp"
)

type solveOpts struct {
	scenario     string
	generate     int
	difficulty   string
	seed         int64
	algorithm    string
	timeLimit    time.Duration
	baselineTime time.Duration
}

var solveopts = solveOpts{}

func NewSolveCmd() *cobra.Command {

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a tour for a scenario file or a generated scenario",
		Long: `Find a tour for a scenario. The scenario is either read from a YAML file (--scenario) or generated
on the fly (--generate). The search stops when the time limit expires and reports the best tour found so far.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScenario()
			if err != nil {
				return err
			}
			algo, err := tsp.ParseAlgorithm(solveopts.algorithm)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			logger := logrus.WithField("run", uuid.NewString())
			logger.WithFields(logrus.Fields{
				"cities":    sc.Size(),
				"algorithm": algo.String(),
				"limit":     solveopts.timeLimit,
			}).Info("Solving scenario.")

			res, err := tsp.Solve(ctx, sc, algo,
				tsp.WithTimeAllowance(solveopts.timeLimit),
				tsp.WithBaselineAllowance(solveopts.baselineTime),
				tsp.WithSeed(solveopts.seed),
				tsp.WithLogger(logger),
			)
			if err != nil {
				return fmt.Errorf("failed to solve scenario: %w", err)
			}
			if !res.Found() {
				logger.Warn("No tour exists or none was found in time.")
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.String())

			return nil
		},
	}

	solveCmd.Flags().StringVarP(&solveopts.scenario, "scenario", "s", "", "scenario file to solve")
	solveCmd.Flags().IntVarP(&solveopts.generate, "generate", "g", 0, "generate a scenario with this many cities instead of reading one")
	solveCmd.Flags().StringVarP(&solveopts.difficulty, "difficulty", "d", "hard", "difficulty of a generated scenario ("+strings.Join(scenario.DifficultyNames(), ", ")+")")
	solveCmd.Flags().Int64Var(&solveopts.seed, "seed", 1, "seed for scenario generation and the random tour")
	solveCmd.Flags().StringVarP(&solveopts.algorithm, "algorithm", "a", tsp.BranchAndBound.String(), "solver to use ("+strings.Join(sortedKeys(tsp.AlgorithmNames()), ", ")+")")
	solveCmd.Flags().DurationVarP(&solveopts.timeLimit, "time", "t", tsp.DefaultTimeAllowance, "wall-clock limit for the whole search")
	solveCmd.Flags().DurationVar(&solveopts.baselineTime, "baseline-time", tsp.DefaultTimeAllowance, "limit for finding the initial random tour")
	solveCmd.MarkFlagsMutuallyExclusive("scenario", "generate")
	solveCmd.MarkFlagsOneRequired("scenario", "generate")

	return solveCmd
}

func loadScenario() (*scenario.Scenario, error) {
	if solveopts.scenario != "" {
		return scenario.Load(solveopts.scenario)
	}
	d, err := scenario.ParseDifficulty(solveopts.difficulty)
	if err != nil {
		return nil, err
	}

	return scenario.Generate(solveopts.generate, d, solveopts.seed)
}
