package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/embedkit/embedkit/crc8"
	"github.com/embedkit/embedkit/hexcodec"
)

var crcCmd = &cobra.Command{
	Use:   "crc8 <hex>",
	Short: "Compute the CRC-8 checksum of a hex byte string",
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
		sum := crc8.Checksum(buf)
		log.Debug("checksum", "bytes", len(buf), "crc", sum)
		printInfo("%02x\n", sum)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(crcCmd)
}
