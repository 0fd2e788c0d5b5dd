package cmd

import (
	"encoding/json"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"qpack"
	"qpack/cli"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decodes QPack bytes into a JSON document.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}
		v, err := qpack.Decode(data, codecConfig)
		if err != nil {
			return err
		}
		tree, err := valueToJSON(v)
		if err != nil {
			return err
		}

		compact, _ := cmd.Flags().GetBool(cli.FlagCompact)
		var out []byte
		if !compact && isatty.IsTerminal(os.Stdout.Fd()) {
			out, err = json.MarshalIndent(tree, "", "  ")
		} else {
			out, err = json.Marshal(tree)
		}
		if err != nil {
			return errors.Wrap(err, "error rendering JSON")
		}
		out = append(out, '\n')
		logger.Debug("decoded value", "qpack_bytes", len(data), "json_bytes", len(out))
		return writeOutput(cmd, out)
	},
}

func init() {
	decodeCmd.Flags().String(cli.FlagOut, "", "Write output to a file instead of stdout.")
	decodeCmd.Flags().Bool(cli.FlagCompact, false, "Always emit compact JSON, even on a terminal.")
	rootCmd.AddCommand(decodeCmd)
}
