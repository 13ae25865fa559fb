package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/linkfix/cmd/linkfix"
	"github.com/arthur-debert/linkfix/internal/version"
)

func main() {
	rootCmd := linkfix.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "LINKFIX",
		Section: "1",
		Source:  "linkfix " + version.Version,
		Manual:  "linkfix manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
