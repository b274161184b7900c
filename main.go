package main

import (
	"os"

	"github.com/thenoetrevino/roster/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
