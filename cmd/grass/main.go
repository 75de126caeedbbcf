package main

// This is the command line front end for the grass language.

import (
	"os"

	"github.com/grasslang/grass/cmd/grass/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
