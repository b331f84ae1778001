package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// log is discarded by default; --verbose swaps in a colored handler on
// stderr so results on stdout stay pipeable.
var log = slog.New(slog.NewTextHandler(io.Discard, nil))

func initLogger(verbose bool) {
	if !verbose {
		return
	}
	log = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	}))
}
