package server

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net/http"
	"time"

	"github.com/likexian/selfca"

	"github.com/MKhiriev/go-pwned-check/internal/config"
	"github.com/MKhiriev/go-pwned-check/internal/logger"
)

type httpServer struct {
	server   *http.Server
	useTLS   bool
	certFile string
	keyFile  string

	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.ServerHTTP, logger *logger.Logger) (*httpServer, error) {
	srv := &http.Server{
		Addr:         cfg.HTTPAddress,
		Handler:      router,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}

	h := &httpServer{
		server:   srv,
		useTLS:   cfg.SelfTLS || (cfg.TLSCertPath != "" && cfg.TLSKeyPath != ""),
		certFile: cfg.TLSCertPath,
		keyFile:  cfg.TLSKeyPath,
		logger:   logger,
	}

	if cfg.SelfTLS {
		tlsConfig, err := selfSignedTLSConfig()
		if err != nil {
			return nil, fmt.Errorf("self-signed certificate: %w", err)
		}
		srv.TLSConfig = tlsConfig
		logger.Warn().Msg("using a fresh self-signed certificate, clients will not trust it")
	}

	return h, nil
}

func (h *httpServer) RunServer() {
	var err error
	switch {
	case h.server.TLSConfig != nil:
		// certificate pair already loaded, no need to pass files
		err = h.server.ListenAndServeTLS("", "")
	case h.useTLS:
		err = h.server.ListenAndServeTLS(h.certFile, h.keyFile)
	default:
		err = h.server.ListenAndServe()
	}
	if err != nil && err != http.ErrServerClosed {
		h.logger.Error().Msgf("HTTP server ListenAndServe: %v", err)
	}
}

func (h *httpServer) Shutdown() {
	h.logger.Info().Msg("HTTP server Shutdown")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Error().Msgf("HTTP server Shutdown: %v", err)
	}
}

// selfSignedTLSConfig generates a throwaway server certificate valid for
// 30 days. A new pair is generated on every start.
func selfSignedTLSConfig() (*tls.Config, error) {
	caConfig := selfca.Certificate{
		IsCA:      true,
		KeySize:   2048,
		NotBefore: time.Now(),
		NotAfter:  time.Now().Add(time.Duration(30*24) * time.Hour),
	}

	certificate, key, err := selfca.GenerateCertificate(caConfig)
	if err != nil {
		return nil, err
	}

	pair, err := tls.X509KeyPair(
		pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certificate}),
		pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}),
	)
	if err != nil {
		return nil, err
	}

	return &tls.Config{Certificates: []tls.Certificate{pair}}, nil
}
