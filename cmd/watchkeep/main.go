package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd, cmdCtx := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			cmdCtx.notifyError(context.Background(), err)
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
