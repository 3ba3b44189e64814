// Command ewahctl is a small command-line harness for exercising the
// ewah package: building compact bitmaps from a list of positions,
// combining them with set algebra, and inspecting their contents.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
