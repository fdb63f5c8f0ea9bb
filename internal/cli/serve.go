// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pwned-check/internal/adapter"
	"github.com/MKhiriev/go-pwned-check/internal/config"
	httphandler "github.com/MKhiriev/go-pwned-check/internal/handler/http"
	"github.com/MKhiriev/go-pwned-check/internal/logger"
	"github.com/MKhiriev/go-pwned-check/internal/pwned"
	"github.com/MKhiriev/go-pwned-check/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a REST facade over the range API",
	Long: "Run an HTTP server exposing the breach check as a small REST API. " +
		"Inbound credentials are hashed in memory and checked with the same " +
		"k-anonymity range queries the check command uses.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCommand()
	},
}

func init() {
	serveCmd.Flags().VarP(&listenAddress, "address", "a", "Address host:port for the HTTP server to listen on")
	serveCmd.Flags().BoolVar(&selfTLS, "self-tls", false, "Serve over TLS with a self-signed certificate generated on start")
	serveCmd.Flags().StringVar(&tlsCert, "tls-cert", "", "Path to the PEM encoded TLS certificate to be used by the server")
	serveCmd.Flags().StringVar(&tlsKey, "tls-key", "", "Path to the PEM encoded TLS private key to be used by the server")
	serveCmd.Flags().BoolVar(&padding, "padding", false, "Ask the range API to pad responses with decoy entries")
	serveCmd.Flags().StringVar(&apiAddress, "api", "", "Base URL of the range API")
	serveCmd.MarkFlagsMutuallyExclusive("self-tls", "tls-cert")

	rootCmd.AddCommand(serveCmd)
}

func serveCommand() error {
	cfg, err := config.GetServerConfig(buildOverrides())
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewLogger("serve")
	applyLogLevel(log, cfg.App)

	rangeAPI, err := adapter.NewRangeAPI(cfg.API, log)
	if err != nil {
		return err
	}
	checker := pwned.NewChecker(rangeAPI)

	handler := httphandler.NewHandler(checker, cfg.App.Version, log)

	srv, err := server.NewServer(handler, *cfg, log)
	if err != nil {
		return err
	}

	srv.RunServer()

	return nil
}
