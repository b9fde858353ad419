// Command cardadmin runs the card platform admin backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/devendraInfograins/CardApp/internal/app"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Usage = usage
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "serve"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := app.Options{ConfigPath: *configPath}

	var err error
	switch command {
	case "serve":
		err = app.RunServer(ctx, opts)
	case "migrate":
		err = app.Migrate(ctx, opts)
	case "seed":
		err = app.Seed(ctx, opts)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.WithError(err).Fatal(command)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: cardadmin [-config path] [serve|migrate|seed]\n")
	flag.PrintDefaults()
}
