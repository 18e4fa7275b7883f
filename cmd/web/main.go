// Package main starts the browser-facing web service.
//
// This process serves the themed site: icon library pages, inline icon
// rendering through the active theme chain, and static assets.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/versocms/verso/internal/cmd/web"
)

func main() {
	log.SetPrefix("[WEB] ")

	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := webcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
