package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/NMTSolutions/NMT-Website-Redesigned/config"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/adminapi"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/app"
	"github.com/NMTSolutions/NMT-Website-Redesigned/internal/webserver"
)

var (
	h     = flag.Bool("h", false, "help usage")
	conff = flag.String("c", "/etc/nmtweb.yml", "config yaml file")
)

func printHelp() {
	if *h {
		ustr := fmt.Sprintf("nmtweb usage:\nUsage: %s -h\nOptions:", os.Args[0])
		fmt.Fprintf(os.Stderr, ustr)
		flag.PrintDefaults()
		os.Exit(0)
	}
}

func main() {
	flag.Parse()
	printHelp()

	cfg := config.LoadConfig(*conff)
	cfg.InitDirs()

	appx := app.NewApplication(cfg)
	if err := appx.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "application init error: %v\n", err)
		os.Exit(1)
	}
	defer appx.Release()

	webserver.Init(appx)
	adminapi.InitRouter()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := webserver.Listen(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return webserver.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zap.S().Errorf("server stopped: %v", err)
		os.Exit(1)
	}
	zap.S().Info("server stopped")
}
