package main

import (
	"context"
	"os"

	"github.com/ardnew/bole"
	"github.com/ardnew/bole/cmd/bolecat/cli"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		bole.Root().Errorf("run failed: %v", err)
		os.Exit(1)
	}
}
