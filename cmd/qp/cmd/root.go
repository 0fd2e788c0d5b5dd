package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"qpack"
	"qpack/cli"
	"qpack/config"
	"qpack/log"
)

var (
	logger            = log.WithModule("cmd")
	configuredHomeDir string
	codecConfig       *qpack.Config
)

var rootCmd = &cobra.Command{
	Use:   "qp",
	Short: "Command-line converter and inspector for the QPack binary format.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.CalledAs() == "init" || cmd.CalledAs() == "version" {
			return nil
		}
		configuredHomeDir = cli.GetHomeDir(cmd)
		codecConfig = qpack.NewConfig()

		exists, err := config.HomeDirExists(configuredHomeDir)
		if err != nil {
			return err
		}
		if !exists {
			// uninitialized home dir: run on defaults
			return nil
		}
		cfg, err := config.ReadConfigFile(configuredHomeDir)
		if err != nil {
			return errors.Wrap(err, "error reading config file")
		}
		logLevel, err := log.NewLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		log.SetLevel(logLevel)
		codecConfig, err = cfg.CodecConfig()
		if err != nil {
			return errors.Wrap(err, "invalid codec configuration")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, "~/.qp", "Home directory for the tool's configuration.")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
