package main

import (
	"github.com/spf13/cobra"

	"github.com/embedkit/embedkit/macaddr"
)

var macCmd = &cobra.Command{
	Use:   "mac <address>",
	Short: "Normalize a hardware address to both notations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := macaddr.Parse(args[0])
		if err != nil {
			return err
		}
		printInfo("%s\n", macaddr.Format(a))
		printInfo("%s\n", macaddr.FormatPretty(a))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(macCmd)
}
