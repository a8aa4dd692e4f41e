package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"go.lepak.sg/wordfreq/bench"
	"go.lepak.sg/wordfreq/freq"
)

func newBenchCmd(a *app) *cobra.Command {
	def := bench.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "bench FILE",
		Short: "Count FILE repeatedly and print time and bytes allocated per round",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := a.class()
			if err != nil {
				return err
			}
			engine, err := freq.ParseEngine(a.v.GetString("engine"))
			if err != nil {
				return err
			}

			cfg := bench.Config{
				Trials: a.v.GetInt("trials"),
				Rounds: a.v.GetInt("rounds"),
				Engine: engine,
				Class:  class,
				Reuse:  a.v.GetBool("reuse"),
			}

			buf, err := readInput(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			line := color.New(color.FgGreen)

			sum, err := bench.Run(cmd.Context(), buf, cfg, a.logger, func(r bench.Result) {
				line.Fprintln(out, r.String())
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%d rounds of %d trials: %dms, %.2fmb\n",
				sum.Rounds, cfg.Trials, sum.Elapsed.Milliseconds(),
				float64(sum.AllocBytes)/1024/1024)
			return nil
		},
	}

	f := cmd.Flags()
	f.Int("trials", def.Trials, "counting passes per round")
	f.Int("rounds", def.Rounds, "number of measured rounds")
	f.String("engine", def.Engine.String(), "scan, regexp or naive")
	f.Bool("reuse", def.Reuse, "reset and reuse one table instead of making one per trial")
	return cmd
}
