package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/vaxscheduler/internal/buildinfo"
	"github.com/dmitrijs2005/vaxscheduler/internal/config"
	"github.com/dmitrijs2005/vaxscheduler/internal/scheduler"
	"golang.org/x/term"
)

func main() {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		buildinfo.PrintBuildData(os.Stdout)
	}

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := scheduler.NewApp(ctx, cfg, os.Stdin, interactive)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
