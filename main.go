package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"mcbanner/cmd"
	"mcbanner/internal/console"
	"mcbanner/internal/logger"
	"mcbanner/internal/version"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	slog.SetDefault(logger.NewLogger())
	ctx := context.Background()

	defer cleanup(ctx)

	// Recover from logger.FatalError so cleanup still runs
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(logger.FatalError); ok {
				exitCode = 1
			} else {
				panic(r)
			}
		}
		if exitCode != 0 {
			fmt.Fprintln(os.Stderr, console.Parse(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} did not finish running successfully.", version.ApplicationName)))
		}
	}()

	// Report unexpected panics with a stack trace, then exit through the handler above
	defer logger.Recover(ctx)

	opts, err := cmd.Parse(os.Args[1:])
	if err != nil {
		var pe *cmd.ParseError
		if errors.As(err, &pe) {
			fmt.Fprint(os.Stderr, console.Parse(pe.Error()))
		} else {
			logger.Error(ctx, err.Error())
		}
		return 1
	}

	return cmd.Execute(ctx, opts)
}

func cleanup(ctx context.Context) {
	logger.Debug(ctx, "Cleaning up...")
	logger.Cleanup()
}
