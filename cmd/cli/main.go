package main

import (
	"context"
	"log"
	"os"

	"github.com/hiresphere/hiresphere/internal/buildinfo"
	"github.com/hiresphere/hiresphere/internal/cli"
	"github.com/hiresphere/hiresphere/internal/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
