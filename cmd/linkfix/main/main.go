package main

import (
	"os"

	"github.com/arthur-debert/linkfix/cmd/linkfix"
)

func main() {
	os.Exit(linkfix.Execute())
}
