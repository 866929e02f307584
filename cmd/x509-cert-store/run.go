// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/x509-cert-store/src/cli"
	"github.com/H0llyW00dzZ/x509-cert-store/src/logger"
	"github.com/H0llyW00dzZ/x509-cert-store/src/version"
)

func main() {
	log := logger.NewCLILogger()
	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Channel to signal completion with buffer size 1
	done := make(chan error, 1)
	go func() { done <- cli.Execute(ctx, version.Version, log, os.Args[1:]) }()

	select {
	case <-ctx.Done():
		log.Println("Received termination signal. Exiting...")
		os.Exit(130)
	case err := <-done:
		if err != nil {
			log.Errorf("%v", err)
			stop()
			os.Exit(1)
		}
	}
}
