package main

import (
	"context"
	"driver-training-service/internal/cli"
	"fmt"
	"os"
)

func main() {
	if err := cli.RootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
