package main

import (
	"errors"
	"os"

	"github.com/jcorbin/primrt/internal/logio"
)

func main() {
	log := logio.NewLogger(os.Stderr)
	os.Exit(run(log, os.Args[1:]))
}

func run(log *logio.Logger, args []string) int {
	cmd := newRootCommand(log)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil && !errors.Is(err, errCheckFailed) {
		log.ErrorIf(err)
	}
	return log.ExitCode()
}
