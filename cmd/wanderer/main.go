// Command wanderer replays a navigation scenario over a weighted grid and
// writes one trace line per event.
//
// Usage:
//
//	wanderer NODES EDGES OBJECTIVES [OUTPUT]
//
// OUTPUT defaults to standard output; "-" selects it explicitly.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wanderer:", err)
		os.Exit(1)
	}
}
