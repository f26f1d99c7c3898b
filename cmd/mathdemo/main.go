package main

import (
	"context"
	"fmt"
	"os"

	"github.com/roach88/mathdemo/internal/cli"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	cmd := cli.NewRootCommand()
	cmd.Version = version

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
