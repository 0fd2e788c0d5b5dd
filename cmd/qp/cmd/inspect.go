package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"qpack"
)

// rawPreviewLen caps how much of a Raw payload the inspect table shows.
const rawPreviewLen = 32

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Prints the token stream of a QPack document without building it.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{
			"Offset",
			"Tag",
			"Value",
		})

		u := qpack.NewUnpacker(data)
		for {
			tok, err := u.Next()
			if err != nil {
				table.Render()
				return err
			}
			table.Append([]string{
				strconv.Itoa(tok.Offset),
				tok.Tag.String(),
				tokenValue(tok),
			})
			if tok.Tag == qpack.TagEnd {
				break
			}
		}

		table.Render()
		return nil
	},
}

func tokenValue(tok qpack.Token) string {
	switch {
	case tok.Tag == qpack.TagInt64:
		return strconv.FormatInt(tok.Int, 10)
	case tok.Tag == qpack.TagDouble:
		return strconv.FormatFloat(tok.Double, 'g', -1, 64)
	case tok.Tag == qpack.TagRaw:
		preview := tok.Raw
		if len(preview) > rawPreviewLen {
			preview = preview[:rawPreviewLen]
		}
		return fmt.Sprintf("%d bytes: %q", len(tok.Raw), preview)
	case tok.Count >= 0:
		return strconv.Itoa(tok.Count)
	default:
		return ""
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
