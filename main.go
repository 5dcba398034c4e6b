package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"askpdf/config"
	"askpdf/router"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func main() {
	var cfgDir string
	root := &cobra.Command{
		Use:          "askpdf [port]",
		Short:        "Question relay and text-to-PDF server",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgDir)
			if err != nil {
				return err
			}
			port, err := config.ResolvePort(args, cfg)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, port)
		},
	}
	root.Flags().StringVarP(&cfgDir, "config", "c", "./config", "directory holding config.yml")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := root.ExecuteContext(ctx); err != nil {
		log.Fatalf("askpdf: %v", err)
	}
}

func serve(ctx context.Context, cfg *config.Config, port int) error {
	if cfg.App.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.AI.APIKey == "" {
		log.Println("PERPLEXITY_API_KEY is not set, upstream calls will be rejected")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", port),
		Handler:           router.SetupRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	banner := strings.Repeat("=", 60)
	log.Printf("\n%s\nServer starting on http://localhost:%d\nEnvironment: %s\nDebug Mode: %t\n%s",
		banner, port, cfg.App.Env, cfg.App.Debug, banner)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Println("shutting down")
	return srv.Shutdown(shutdownCtx)
}
