package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.lepak.sg/wordfreq/logging"
	"go.lepak.sg/wordfreq/words"
)

const envPrefix = "WORDFREQ"

// app holds what every subcommand shares once flags are parsed.
// logger is nil until the persistent flags have been read.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{
		v: viper.New(),
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "wordfreq",
		Short:         "Count word frequencies without copying repeated words",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if err := a.v.BindPFlags(cmd.InheritedFlags()); err != nil {
				return err
			}

			logger, err := logging.New(logging.Config{
				Level:  a.v.GetString("log-level"),
				Format: a.v.GetString("log-format"),
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String("class", words.Unicode.String(), "word characters: unicode or ascii")
	pf.String("log-level", "info", "debug, info, warn or error")
	pf.String("log-format", "text", "text or json")

	root.AddCommand(newCountCmd(a), newBenchCmd(a))
	return root, a
}

// fail logs the error that ended the command. It goes through the logger
// built from the flags, unless the flags were never read or were invalid.
func (a *app) fail(cmd *cobra.Command, err error) {
	logger := a.logger
	if logger == nil {
		logger, _ = logging.New(logging.Config{Output: cmd.ErrOrStderr()})
	}
	logger.Error("wordfreq failed", "err", err)
}

func (a *app) class() (words.Class, error) {
	return words.ParseClass(a.v.GetString("class"))
}

// readInput loads the whole file. A missing or unreadable file
// is returned as is, wrapped with the path.
func readInput(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return buf, nil
}
