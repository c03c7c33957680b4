package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/quantumauth-io/quantum-go-utils/log"
	clientconfig "github.com/quantumauth-io/wallet-data-maker/cmd/wallet-data-maker/config"
	"github.com/spf13/afero"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	log.Debug("wallet-data-maker",
		"version", Version,
		"commit", Commit,
		"build_date", BuildDate,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(&app{
		fs:         afero.NewOsFs(),
		loadConfig: clientconfig.Load,
	})
	if err := root.ExecuteContext(ctx); err != nil {
		log.Fatal("wallet-data-maker failed", "error", err)
	}
}
