package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/julianunes2703/ipp/api"
	"github.com/julianunes2703/ipp/extractor"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP API server",
	Long: `Runs one extraction pass against the configured source and serves the
snapshot over HTTP. POST /refresh re-runs the pipeline.`,
	Run: func(cmd *cobra.Command, args []string) {
		bindTarget(cmd)
		tgt := target()
		if tgt == "" {
			fmt.Fprintln(os.Stderr, "no target: set source.url in the config or pass --target")
			os.Exit(1)
		}

		engine := extractor.NewEngine(extractor.LoadConfig(), sourceFormat(tgt), extractor.NewFetcher(tgt))
		if err := engine.Refresh(context.Background()); err != nil {
			// Serve anyway; the snapshot is empty and /refresh can retry.
			log.Printf("initial extraction failed: %v", err)
		}

		cfg := api.DefaultConfig()
		if port := viper.GetString("api.port"); port != "" {
			cfg.Port = port
		}

		server := api.New(cfg, engine)
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("target", "t", "", "File or URL of the DRE export")
}
