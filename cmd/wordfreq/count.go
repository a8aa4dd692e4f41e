package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"go.lepak.sg/wordfreq/freq"
	"go.lepak.sg/wordfreq/rank"
)

func newCountCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count FILE",
		Short: "Print the most frequent words in FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := a.class()
			if err != nil {
				return err
			}
			top := a.v.GetInt("top")
			if top < 0 {
				return fmt.Errorf("--top must not be negative, got %d", top)
			}

			buf, err := readInput(args[0])
			if err != nil {
				return err
			}

			var tb *freq.Table
			if shards := a.v.GetInt("shards"); shards > 1 {
				tb, err = freq.CountParallel(cmd.Context(), buf, class, shards)
				if err != nil {
					return err
				}
			} else {
				tb = freq.New(class, 0)
				tb.Count(buf)
			}

			a.logger.Info("counted",
				"file", args[0],
				"bytes", len(buf),
				"words", tb.Total(),
				"distinct", tb.Len(),
			)

			printTop(cmd.OutOrStdout(), rank.Top(tb, top), tb.Total())
			return nil
		},
	}

	cmd.Flags().Int("top", 10, "number of words to print")
	cmd.Flags().Int("shards", 1, "split the file and count the pieces in parallel")
	return cmd
}

func printTop(w io.Writer, entries []freq.Entry, total int) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Word", "Count", "Share"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for i, e := range entries {
		table.Append([]string{
			strconv.Itoa(i + 1),
			e.Word,
			strconv.Itoa(e.Count),
			fmt.Sprintf("%.2f%%", 100*float64(e.Count)/float64(total)),
		})
	}

	table.SetFooter([]string{"", "total", strconv.Itoa(total), ""})
	table.Render()
}
