package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/winnow"
	httpAdapter "github.com/aretw0/winnow/internal/adapters/http"
	"github.com/aretw0/winnow/internal/cli"
	"github.com/aretw0/winnow/internal/logging"
	"github.com/aretw0/winnow/internal/metrics"
	"github.com/aretw0/winnow/pkg/adapters/memory"
	redisBook "github.com/aretw0/winnow/pkg/adapters/redis"
	"github.com/aretw0/winnow/pkg/domain"
	"github.com/aretw0/winnow/pkg/ports"
	"github.com/aretw0/winnow/pkg/words"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard HTTP server",
	Long: `Starts the JSON API the dashboard talks to: game sessions, guesses,
advice, SSE event streams, and Prometheus metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadSettings(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		logger := logging.New(level)

		path := cli.ResolveWordList(".", cfg.Words)
		var loadOpts []words.Option
		if cfg.ProperNouns {
			loadOpts = append(loadOpts, words.WithProperNouns())
		}
		dict, err := words.Load(path, cfg.Letters, loadOpts...)
		if err != nil {
			fmt.Printf("Error loading word list: %v\n", err)
			os.Exit(1)
		}

		// Opening book: Redis when configured, in-memory otherwise
		var book ports.OpeningBook
		if cfg.Redis.Address != "" {
			ttl, err := cfg.Redis.TTLDuration()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			bookOpts := []redisBook.Option{redisBook.WithTTL(ttl)}
			if cfg.Redis.Prefix != "" {
				bookOpts = append(bookOpts, redisBook.WithPrefix(cfg.Redis.Prefix))
			}
			rb := redisBook.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, bookOpts...)
			defer rb.Close()
			book = rb
			logger.Info("Opening book on Redis", "address", cfg.Redis.Address)
		} else {
			book = memory.NewBook()
		}

		policy, err := domain.ParsePoolPolicy(cfg.Pool)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		var opening domain.Word
		if cfg.Opening != "" {
			opening, err = domain.ParseWord(cfg.Opening, cfg.Letters)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		}

		handler, err := httpAdapter.NewHandler(httpAdapter.Config{
			Dict:       dict,
			GuessLimit: cfg.Guesses,
			Pool:       policy,
			Opening:    opening,
			Book:       book,
			Metrics:    metrics.New(),
			Logger:     logger,
			Version:    strings.TrimSpace(winnow.Version),
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		addr := cfg.Server.Address
		if cmd.Flags().Changed("port") {
			port, _ := cmd.Flags().GetString("port")
			addr = ":" + port
		}

		srv := &http.Server{
			Addr:    addr,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Winnow Server on %s\n", srv.Addr)
			fmt.Printf("Serving %d words of %d letters from %s\n", len(dict), cfg.Letters, path)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Winnow Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	addGameFlags(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on (overrides the configured address)")
}
