package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/embedkit/embedkit/hexcodec"
	"github.com/embedkit/embedkit/wire"
)

var encodeWidth int

var hexCmd = &cobra.Command{
	Use:   "hex",
	Short: "Encode and decode hex wire formats",
}

func init() {
	rootCmd.AddCommand(hexCmd)
	hexCmd.AddCommand(newHexEncodeCmd())
	hexCmd.AddCommand(newHexDecodeCmd())
	hexCmd.AddCommand(newHexPrettyCmd())
}

func newHexEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <value>",
		Short: "Encode an unsigned integer as big-endian hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return fmt.Errorf("value %q: %w", args[0], err)
			}
			if encodeWidth < 1 || encodeWidth > 8 {
				return fmt.Errorf("width must be 1..8 bytes, got %d", encodeWidth)
			}
			b := wire.Encode(v, encodeWidth)
			log.Debug("encoded", "value", v, "width", encodeWidth)
			printInfo("%s\n", hexcodec.Format(b))
			return nil
		},
	}
	cmd.Flags().IntVarP(&encodeWidth, "width", "w", 4, "Encoded width in bytes (1-8)")
	return cmd
}

func newHexDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode big-endian hex into an unsigned integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := args[0]
			buf := make([]byte, (len(s)+1)/2)
			if n := hexcodec.Parse(s, buf); n != len(s) {
				return fmt.Errorf("invalid hex at character %d of %q", n, s)
			}
			v, err := wire.Decode(buf)
			if err != nil {
				return err
			}
			log.Debug("decoded", "bytes", len(buf))
			printInfo("%d\n", v)
			return nil
		},
	}
}

func newHexPrettyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pretty <hex>",
		Short: "Reformat compact hex for human scanning",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := args[0]
			if len(s)%2 != 0 {
				return fmt.Errorf("hex string has odd length %d", len(s))
			}
			buf := make([]byte, len(s)/2)
			if n := hexcodec.Parse(s, buf); n != len(s) {
				return fmt.Errorf("invalid hex at character %d of %q", n, s)
			}
			printInfo("%s\n", hexcodec.FormatPretty(buf))
			return nil
		},
	}
}
