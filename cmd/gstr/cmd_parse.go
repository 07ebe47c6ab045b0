package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glasslab/gstr/format"
	"github.com/glasslab/gstr/glass"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <buildup>",
		Short: "Parse a buildup and dump the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := glass.Parse(args[0])
			if err != nil {
				return err
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			case "gstr":
				encoder = format.NewGStrEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(b); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outputFormat == "json" {
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json, gstr)")

	return cmd
}
