package cmd

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"qpack/cli"
)

// readInput reads the optional file argument, falling back to stdin
// when no argument (or "-") is given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := ioutil.ReadAll(os.Stdin)
		return data, errors.Wrap(err, "error reading stdin")
	}
	data, err := ioutil.ReadFile(args[0])
	return data, errors.Wrapf(err, "error reading %s", args[0])
}

// writeOutput writes to the --out file when set, otherwise to stdout.
func writeOutput(cmd *cobra.Command, data []byte) error {
	outPath, err := cmd.Flags().GetString(cli.FlagOut)
	if err != nil {
		panic(err)
	}
	if outPath == "" {
		_, err := os.Stdout.Write(data)
		return errors.Wrap(err, "error writing stdout")
	}
	return errors.Wrapf(ioutil.WriteFile(outPath, data, 0644), "error writing %s", outPath)
}
