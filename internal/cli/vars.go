package cli

import (
	"github.com/MKhiriev/go-pwned-check/internal/config"
	"github.com/MKhiriev/go-pwned-check/models"
)

var (
	// root
	verbose bool
	// root
	configPath string
	// check
	fromStdin bool
	// check
	fromClipboard bool
	// check
	interactive bool
	// check
	hashed bool
	// check
	ntlm bool
	// check, serve
	padding bool
	// check, serve
	apiAddress string
	// serve
	listenAddress config.NetAddress
	// serve
	selfTLS bool
	// serve
	tlsCert string
	// serve
	tlsKey string

	// build metadata shown by the version command
	buildInfo models.AppBuildInfo
)
