package main

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bnbtsp/scenario"
)

type generateOpts struct {
	cities     int
	difficulty string
	seed       int64
	out        string
}

var generateopts = generateOpts{}

func NewGenerateCmd() *cobra.Command {

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random scenario to a YAML file",
		Long:  `Generate a random scenario with the given number of cities and difficulty. The same seed always produces the same scenario`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := scenario.ParseDifficulty(generateopts.difficulty)
			if err != nil {
				return err
			}
			sc, err := scenario.Generate(generateopts.cities, d, generateopts.seed)
			if err != nil {
				return err
			}
			if generateopts.out == "-" {
				data, err := sc.Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)

				return err
			}
			if err := sc.Save(generateopts.out); err != nil {
				return err
			}
			logrus.Infof("Wrote %d cities to %s.", sc.Size(), generateopts.out)

			return nil
		},
	}

	generateCmd.Flags().IntVarP(&generateopts.cities, "cities", "n", 10, "number of cities")
	generateCmd.Flags().StringVarP(&generateopts.difficulty, "difficulty", "d", "hard", "scenario difficulty ("+strings.Join(scenario.DifficultyNames(), ", ")+")")
	generateCmd.Flags().Int64Var(&generateopts.seed, "seed", 1, "random seed")
	generateCmd.Flags().StringVarP(&generateopts.out, "output", "o", "scenario.yaml", "where to write the scenario, - for stdout")

	return generateCmd
}
