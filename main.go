// Command kisan serves mandi price data and selling recommendations for
// farmers.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"kisan/ai"
	"kisan/config"
	"kisan/handlers"
	"kisan/middleware"
	"kisan/routes"
	"kisan/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
)

var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kisan",
	Short: "Project Kisan market price API",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	pricesCmd.Flags().String("state", "", "filter by state")
	pricesCmd.Flags().String("district", "", "filter by district")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(pricesCmd)
	rootCmd.AddCommand(versionCmd)
}

// --- Serve Command ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func serve() error {
	priceHandler := handlers.NewPriceHandler(newPriceService(), newEngine())

	app := fiber.New()
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestID} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New())

	routes.SetupRoutes(app, priceHandler, cfg.JWTSecret)

	log.Printf("Project Kisan API listening on :%s", cfg.Port)
	return app.Listen(":" + cfg.Port)
}

// --- Prices Command ---

var pricesCmd = &cobra.Command{
	Use:   "prices <crop>",
	Short: "Fetch current mandi prices for a crop",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, _ := cmd.Flags().GetString("state")
		district, _ := cmd.Flags().GetString("district")

		snap := newPriceService().GetSnapshot(args[0], state, district)
		if snap.UpstreamFailed() {
			return fmt.Errorf("failed to fetch price data from APIs")
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Commodity string      `json:"commodity"`
			Mandis    interface{} `json:"mandis"`
			Trends    interface{} `json:"trends"`
			Insights  []string    `json:"insights"`
		}{snap.Commodity, snap.MandiQuotes, snap.Trend, services.GenerateInsights(snap)})
	},
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Project Kisan %s\n", handlers.Version)
	},
}

func newPriceService() *services.PriceService {
	gateway := services.NewMarketDataGateway(services.GatewayConfig{
		VarietyURL:    cfg.VarietyURL,
		VarietyAPIKey: cfg.VarietyAPIKey,
		MandiURL:      cfg.MandiURL,
		MandiAPIKey:   cfg.MandiAPIKey,
		Timeout:       cfg.UpstreamTimeout,
	})
	return services.NewPriceService(gateway)
}

func newEngine() *services.RecommendationEngine {
	key, _ := cfg.AICredential()
	completer, err := ai.New(ai.Settings{
		Provider: cfg.AIProvider,
		APIKey:   key,
		Model:    cfg.AIModel,
		BaseURL:  cfg.GroqBaseURL,
		Timeout:  cfg.AITimeout,
	})
	if err != nil && !errors.Is(err, ai.ErrNotConfigured) {
		log.Printf("AI disabled: %v", err)
	}
	return services.NewRecommendationEngine(completer, cfg.AITimeout)
}
