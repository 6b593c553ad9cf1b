package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app carries the settings shared by every subcommand
type app struct {
	configFile string
	out        string
	logLevel   string
	conf       Config
}

func rootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:   "imgsvd",
		Short: "SVD, PCA, pseudoinverse and Newton's method on images and data",
		Long: `imgsvd runs a batch linear-algebra job and writes its results
(PGM images, matrices and LaTeX fragments) into a subdirectory of --out.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "",
		"TOML file overriding the default settings")
	flags.StringVarP(&a.out, "out", "o", ".",
		"directory receiving the output subdirectories")
	flags.StringVar(&a.logLevel, "log-level", "",
		"log level, overrides loglevel in the config")
	root.AddCommand(
		svdCmd(a),
		pinvCmd(a),
		pcaCmd(a),
		newtonCmd(a),
	)
	return root
}

func (a *app) setup() error {
	conf, err := LoadConfig(a.configFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		conf.LogLevel, err = zerolog.ParseLevel(a.logLevel)
		if err != nil {
			return fmt.Errorf("%w: --log-level: %v", ErrConfig, err)
		}
	}
	zerolog.SetGlobalLevel(conf.LogLevel)
	a.conf = conf
	log.Debug().
		Str("config", a.configFile).
		Ints("rhos", conf.Rhos).
		Int("components", conf.Components).
		Stringer("method", conf.Method).
		Msg("loaded configuration")
	return nil
}

// dir creates the output subdirectory name and returns its path
func (a *app) dir(name string) (string, error) {
	d := filepath.Join(a.out, name)
	if err := os.MkdirAll(d, 0755); err != nil {
		return "", err
	}
	return d, nil
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := rootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("aborting")
		os.Exit(1)
	}
}
