// Command engine reads one move request as JSON on stdin and prints the chosen move as JSON on stdout.
package main

import (
	"fmt"
	"os"

	"github.com/rocketscienceinc/tictactoe-ai/internal/config"
	"github.com/rocketscienceinc/tictactoe-ai/internal/logger"
	"github.com/rocketscienceinc/tictactoe-ai/internal/service"
	"github.com/rocketscienceinc/tictactoe-ai/transport/stdio"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(stdio.ExitFailure)
		}
	}()

	conf := config.MustLoadEngine()

	// stdout carries the protocol, logs go to stderr
	log := logger.New(os.Stderr, conf.LogLevel)

	if err := stdio.Serve(os.Stdin, os.Stdout, service.NewBotService(log)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(stdio.ExitCode(err))
	}
}
