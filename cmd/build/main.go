package main

import (
	"fmt"
	"os"

	"github.com/3-lines-studio/midgard"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: midgard-build <document.json|yaml> <out.html>")
		os.Exit(1)
	}

	docPath := os.Args[1]
	outPath := os.Args[2]

	doc, err := midgard.LoadFile(docPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", docPath, err)
		os.Exit(1)
	}

	cssHref := os.Getenv("MIDGARD_CSS")

	var opts []midgard.Option
	if cssHref != "" {
		opts = append(opts, midgard.WithStylesheet(cssHref))
	}

	if err := midgard.ExportFile(doc, outPath, opts...); err != nil {
		fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s\n", outPath)
}
