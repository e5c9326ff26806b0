// Command hazardctl generates, summarises and filters report datasets and
// checks the external services the API depends on.
package main

import (
	"fmt"
	"os"
	"time"
)

func main() {
	if err := newRootCmd(time.Now).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
