package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vaccuum/vaclog/internal/cli"
)

// Usage:
//
//	vaclog demo --name ./pumps
//	vaclog write warning "filter at 85%" --no-stack
//	vaclog open --name ./pumps
//	vaclog config init --name ./pumps --scheme symbol
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
