// Command pressreplay replays scripted gestures against a pressable control
// and prints the resulting callback and feedback timeline.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/pressable/cmd/pressreplay/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
