package blobber

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// debugEnabled controls whether debug tracing is enabled via BLOBBER_DEBUG env var
var debugEnabled = os.Getenv("BLOBBER_DEBUG") == "1"

// traceOut receives trace lines. It is stderr so tracing never mixes with
// fixture data written to stdout.
var traceOut io.Writer = os.Stderr

// traceLog outputs a debug message if tracing is enabled
func traceLog(format string, args ...interface{}) {
	if debugEnabled {
		fmt.Fprintf(traceOut, "[TRACE] "+format+"\n", args...)
	}
}

// traceBytes outputs bytes in hex format with a descriptive name
func traceBytes(name string, data []byte) {
	if debugEnabled {
		fmt.Fprintf(traceOut, "[TRACE] %s (%d bytes): %s\n", name, len(data), hex.EncodeToString(data))
	}
}

// traceState outputs the internal state of a generator
func traceState(name string, g *Generator) {
	if debugEnabled {
		fmt.Fprintf(traceOut, "[TRACE] %s: seed=0x%02x weyl=0x%02x state=0x%02x\n", name, g.seed, g.weyl, g.state)
	}
}

// compareTrace compares expected vs actual hex strings.
// Returns true if they match. Logs the comparison result when debug is enabled.
func compareTrace(stage, expected, actual string) bool {
	match := expected == actual
	if debugEnabled {
		if !match {
			fmt.Fprintf(traceOut, "[TRACE] ✗ MISMATCH %s:\n", stage)
			fmt.Fprintf(traceOut, "[TRACE]   Expected: %s\n", expected)
			fmt.Fprintf(traceOut, "[TRACE]   Actual:   %s\n", actual)
		} else {
			fmt.Fprintf(traceOut, "[TRACE] ✓ %s matches\n", stage)
		}
	}
	return match
}
