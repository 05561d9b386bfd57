package main

import (
	"os"

	"github.com/jingsu322/fake-rfq-api/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
