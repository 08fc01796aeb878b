package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/Songmu/vibeeq/cmd"
	"github.com/charmbracelet/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := cmd.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		log.Error(err)
		os.Exit(1)
	}
}
