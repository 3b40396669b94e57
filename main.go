package main

import (
	"os"

	"devloop/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
