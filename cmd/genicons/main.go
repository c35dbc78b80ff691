// genicons renders the StreamWatch icon set — web favicon, PWA icons
// (standard and maskable), and the multi-resolution Windows app_icon.ico —
// into the project tree. Run it from the app root:
//
//	go run ./cmd/genicons
package main

import (
	"fmt"
	"os"

	"github.com/streamwatch/icons/internal/gen"
)

func main() {
	root, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, "genicons:", err)
		os.Exit(1)
	}
	if err := gen.Run(root, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "genicons:", err)
		os.Exit(1)
	}
}
