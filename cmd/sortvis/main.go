// Command sortvis animates a sorting algorithm in the terminal.
//
// Usage:
//
//	sortvis <algorithm> <n> <frameRate> [flags]
//
// The algorithm is one of bubble, selection, insertion, merge or quick. n is
// the number of elements (at least 2) and frameRate the number of frames drawn
// per second. After the sort completes, a verification sweep marks the sorted
// prefix in green. Press q to cancel and quit.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
