package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	a := newApp(os.Stdout)

	if err := a.command().Execute(); err != nil {
		if a.log != nil {
			a.log.Error("command failed", zap.Error(err))
			_ = a.log.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}

		os.Exit(1)
	}
}
