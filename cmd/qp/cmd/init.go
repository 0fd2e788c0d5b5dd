package cmd

import (
	"github.com/spf13/cobra"

	"qpack/cli"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initializes the qp home directory and writes the default config file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := cli.InitHomeDir(cmd)
		if err != nil {
			return err
		}
		logger.Info("initialized home directory", "path", homeDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
