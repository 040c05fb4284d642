// Command textpair prints pairs of text values built from owned strings,
// borrowed views and self-sustained buffers.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
