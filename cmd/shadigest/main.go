package main

import (
	"context"
	"os"
	"os/signal"

	"shadigest/cmd/shadigest/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := commands.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
