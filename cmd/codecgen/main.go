package main

import (
	"fmt"
	"os"

	"github.com/platinummonkey/codecgen/pkg/cli"
)

func main() {
	app := cli.NewApp(os.Stdout)

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
