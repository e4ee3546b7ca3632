// Command mtgsearch ingests Magic: The Gathering card exports into a vector
// store and searches them with natural language.
//
//	mtgsearch build-db --num-cards 500
//	mtgsearch query "flying dragon that deals damage"
//	mtgsearch serve
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
