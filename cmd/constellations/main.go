package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
)

// GLFW and the window message loop must stay on the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
