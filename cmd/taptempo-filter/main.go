// taptempo-filter prints the input paths that do not carry a BPM tag
// yet, one per line, for piping into taptempo or other tooling.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tapbeat/taptempo/internal/audio"
)

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("taptempo-filter - list audio files lacking a BPM tag")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  taptempo-filter <file>...")
		os.Exit(1)
	}

	missing, err := audio.FilterMissingBPM(context.Background(), flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, path := range missing {
		fmt.Println(path)
	}
}
