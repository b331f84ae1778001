package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/embedkit/embedkit/fastrand"
)

var (
	randSeed  uint32
	randCount int
	randWidth int
)

var randCmd = &cobra.Command{
	Use:   "rand",
	Short: "Draw from the deterministic fast PRNG",
	Long: `Draws pseudo-random words from the xorshift32 generator used for
device-side jitter and backoff. The same seed always produces the same
sequence; this is a reproducibility tool, not an entropy source.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if randCount < 1 {
			return fmt.Errorf("count must be positive, got %d", randCount)
		}
		g := fastrand.New(randSeed)
		log.Debug("seeded", "seed", randSeed, "count", randCount, "width", randWidth)
		for i := 0; i < randCount; i++ {
			switch randWidth {
			case 8:
				printInfo("%d\n", g.Next8())
			case 16:
				printInfo("%d\n", g.Next16())
			case 32:
				printInfo("%d\n", g.Next32())
			default:
				return fmt.Errorf("width must be 8, 16 or 32, got %d", randWidth)
			}
		}
		return nil
	},
}

func init() {
	randCmd.Flags().Uint32Var(&randSeed, "seed", 1, "Generator seed (0 remaps to the built-in constant)")
	randCmd.Flags().IntVarP(&randCount, "count", "n", 1, "Number of draws")
	randCmd.Flags().IntVarP(&randWidth, "width", "w", 32, "Draw width in bits (8, 16 or 32)")
	rootCmd.AddCommand(randCmd)
}
