// Command itemshelf serves the items and collections HTTP API.
//
// Running it without a subcommand is the same as "itemshelf serve".
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
