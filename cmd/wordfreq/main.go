// Command wordfreq counts word frequencies in a file, and benchmarks
// the counter by counting the same file over and over.
//
//	wordfreq count pride.txt --top 20
//	wordfreq bench pride.txt --rounds 10 --engine naive
//
// Every flag can also be set from the environment with a WORDFREQ_
// prefix, for example WORDFREQ_LOG_LEVEL=debug.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	cmd, a := newRootCmd()
	err := cmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		a.fail(cmd, err)
		os.Exit(1)
	}
}
