package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rdeusser/rbset/zappretty"
)

// app carries what every subcommand needs: flag values resolved through
// viper, the logger, and where to print results.
type app struct {
	v   *viper.Viper
	log *zap.Logger
	out io.Writer
}

func newApp(out io.Writer) *app {
	v := viper.New()
	v.SetEnvPrefix("rbset")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &app{v: v, out: out}
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "rbset",
		Short:         "Exercise the red-black tree backed integer set",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error

			a.log, err = zappretty.NewLogger(zappretty.Options{
				Debug:       a.v.GetBool("debug"),
				Encoding:    a.v.GetString("log-format"),
				OutputPaths: a.v.GetStringSlice("log-output"),
			})

			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	root.SetOut(a.out)

	flags := root.PersistentFlags()
	flags.Bool("debug", false, "enable debug logging")
	flags.String("log-format", zappretty.EncoderName, "log encoding: cli or json")
	flags.StringSlice("log-output", []string{"stderr"}, "log output paths")

	// Only fails for a nil flag set.
	_ = a.v.BindPFlags(flags)

	root.AddCommand(
		a.demoCommand(),
		a.stressCommand(),
		a.treeCommand(),
	)

	return root
}
