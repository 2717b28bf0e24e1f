// Command odgraph analyses origin-destination flow tables: it builds the
// flow graph, scores vertices, prunes weak flows, detects communities and
// writes a JSON report.
//
//	odgraph analyze --flows flows.csv [--vertices zones.csv] [--config odgraph.yaml] \
//	    [--out report.json] [--metrics-file odgraph.prom]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "odgraph:", err)
		os.Exit(1)
	}
}
