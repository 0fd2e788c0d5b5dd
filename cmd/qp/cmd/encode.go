package cmd

import (
	"github.com/spf13/cobra"

	"qpack"
	"qpack/cli"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encodes a JSON document as QPack bytes.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}
		v, err := jsonToValue(data)
		if err != nil {
			return err
		}
		if emptyAsArray, _ := cmd.Flags().GetBool("empty-as-array"); emptyAsArray {
			codecConfig.SetEncodeEmptyAsArray(true)
		}
		if sparseConvert, _ := cmd.Flags().GetBool("sparse-convert"); sparseConvert {
			codecConfig.SetEncodeSparseConvert(true)
		}
		out, err := qpack.Encode(v, codecConfig)
		if err != nil {
			return err
		}
		logger.Debug("encoded value", "json_bytes", len(data), "qpack_bytes", len(out))
		return writeOutput(cmd, out)
	},
}

func init() {
	encodeCmd.Flags().String(cli.FlagOut, "", "Write output to a file instead of stdout.")
	encodeCmd.Flags().Bool("empty-as-array", false, "Encode empty aggregates as arrays instead of maps.")
	encodeCmd.Flags().Bool("sparse-convert", false, "Convert excessively sparse arrays to maps instead of rejecting them.")
	rootCmd.AddCommand(encodeCmd)
}
