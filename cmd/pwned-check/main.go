package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pwned-check/internal/cli"
	"github.com/MKhiriev/go-pwned-check/internal/pwned"
	"github.com/MKhiriev/go-pwned-check/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// Exit codes: 0 when the credential is clean, 2 when it is compromised,
// 1 on any other failure. Scripts can branch on the verdict alone.
func main() {
	cli.SetBuildInfo(models.NewAppBuildInfo(normalizeBuildInfo()))

	if err := cli.Execute(); err != nil {
		if errors.Is(err, pwned.ErrCompromised) {
			os.Exit(2)
		}

		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func normalizeBuildInfo() (string, string, string) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return buildVersion, buildDate, buildCommit
}
