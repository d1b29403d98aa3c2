package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	api "github.com/salesboard/salesboard/internal/http"
	"github.com/salesboard/salesboard/internal/http/handlers"
	rl "github.com/salesboard/salesboard/internal/http/rate_limiter"
	"github.com/salesboard/salesboard/internal/loader"
)

var (
	serveAddr    string
	serveBackend string
	serveShop    string
	serveDemo    bool
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard server",
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides configuration)")
	cmd.Flags().StringVar(&serveBackend, "backend-url", "", "Sales backend base URL (overrides configuration)")
	cmd.Flags().StringVar(&serveShop, "shop", "", "Default shop domain (overrides configuration)")
	cmd.Flags().BoolVar(&serveDemo, "demo", false, "Serve against the built-in demo backend")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(serveBackend, serveShop, serveDemo)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	rl.SetLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rl.StartVisitorCleanupLoop()

	handlers.SetLoader(loader.New(cfg.BackendURL, cfg.RequestTimeout))
	handlers.SetConfig(cfg)
	handlers.SetVersion(version)

	r := api.NewRouter()
	log.Println("✅ Server running on", cfg.Addr)
	return http.ListenAndServe(cfg.Addr, r)
}
