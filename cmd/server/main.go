package main

import (
	"fmt"

	"github.com/MKhiriev/go-scope-config/internal/config"
	handlerhttp "github.com/MKhiriev/go-scope-config/internal/handler/http"
	"github.com/MKhiriev/go-scope-config/internal/logger"
	"github.com/MKhiriev/go-scope-config/internal/resolver"
	"github.com/MKhiriev/go-scope-config/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("config-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	creds := &resolver.StaticCredentialStore{}
	if cfg.Resolver.RemoteBaseURL != "" {
		creds.Generic = &resolver.RemoteEndpoint{
			BaseURL: cfg.Resolver.RemoteBaseURL,
			Token:   cfg.Resolver.RemoteToken,
		}
	}

	provider := resolver.NewAppScopedProvider(cfg.Resolver, creds, log)
	handler := handlerhttp.NewHandler(provider, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
