package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		// An interrupted benchmark is a normal exit, not a failure worth
		// printing.
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "washline: %v\n", err)
		}
		os.Exit(1)
	}
}
