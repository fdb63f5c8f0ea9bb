// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pwned-check/internal/adapter"
	"github.com/MKhiriev/go-pwned-check/internal/config"
	"github.com/MKhiriev/go-pwned-check/internal/logger"
	"github.com/MKhiriev/go-pwned-check/internal/pwned"
)

var checkCmd = &cobra.Command{
	Use:   "check [credential]",
	Short: "Check a credential against the breach corpus",
	Long: "Check a password or a hex digest against the breach corpus. " +
		"The credential is hashed locally and only the first five characters " +
		"of the digest are sent to the range API.",
	Args: func(cmd *cobra.Command, args []string) error {
		if !interactive && !fromStdin && !fromClipboard {
			return cobra.MinimumNArgs(1)(cmd, args)
		}

		return cobra.MaximumNArgs(0)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var credential string
		if len(args) > 0 {
			credential = args[0]
		}

		return checkCommand(cmd.Context(), credential)
	},
}

func init() {
	checkCmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the credential from standard input")
	checkCmd.Flags().BoolVar(&fromClipboard, "clipboard", false, "Read the credential from the system clipboard")
	checkCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Prompt for credentials until interrupted")
	checkCmd.Flags().BoolVarP(&hashed, "hashed", "s", false, "Treat the credential as a hex SHA-1 or NTLM digest instead of plain text")
	checkCmd.Flags().BoolVar(&ntlm, "ntlm", false, "Hash the credential with NTLM instead of SHA-1 and query the NTLM corpus")
	checkCmd.Flags().BoolVar(&padding, "padding", false, "Ask the range API to pad responses with decoy entries")
	checkCmd.Flags().StringVar(&apiAddress, "api", "", "Base URL of the range API")
	checkCmd.MarkFlagsMutuallyExclusive("stdin", "clipboard", "interactive")

	rootCmd.AddCommand(checkCmd)
}

func checkCommand(ctx context.Context, credential string) error {
	cfg, err := config.GetClientConfig(buildOverrides())
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewConsoleLogger("check")
	applyLogLevel(log, cfg.App)

	rangeAPI, err := adapter.NewRangeAPI(cfg.API, log)
	if err != nil {
		return err
	}
	checker := pwned.NewChecker(rangeAPI)

	ctx = log.WithContext(ctx)

	if interactive {
		return runInteractiveSession(ctx, checker)
	}

	credential, err = readCredential(credential)
	if err != nil {
		return err
	}

	return checkOne(ctx, checker, credential)
}

// readCredential resolves the credential from the argument, stdin, or the
// clipboard, depending on the flags of the check command.
func readCredential(arg string) (string, error) {
	switch {
	case fromStdin:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}

		return strings.TrimRight(string(data), "\r\n"), nil
	case fromClipboard:
		data, err := clipboard.ReadAll()
		if err != nil {
			return "", fmt.Errorf("read clipboard: %w", err)
		}

		return data, nil
	default:
		return arg, nil
	}
}

// checkOne checks a single credential and prints its verdict. A compromised
// credential is reported through the returned error so main can map it to a
// dedicated exit code.
func checkOne(ctx context.Context, checker pwned.CredentialChecker, credential string) error {
	if credential == "" {
		return errors.New("credential is empty")
	}

	var err error
	switch {
	case hashed:
		err = checker.CheckDigest(ctx, credential)
	case ntlm:
		err = checker.CheckNTLM(ctx, credential)
	default:
		err = checker.Check(ctx, credential)
	}

	return reportVerdict(credential, err)
}

// reportVerdict печатает вердикт проверки на stdout.
func reportVerdict(credential string, err error) error {
	if err == nil {
		fmt.Println("Credential not found in known breaches")
		printStrength(credential)

		return nil
	}

	if count, ok := pwned.CompromiseCount(err); ok {
		fmt.Printf("COMPROMISED: seen %d times in known breaches\n", count)
		printStrength(credential)

		return pwned.ErrCompromised
	}

	return err
}

// runInteractiveSession prompts for credentials until the user interrupts.
// Lookup failures are logged and the session continues, so one flaky request
// does not end the run.
func runInteractiveSession(ctx context.Context, checker pwned.CredentialChecker) error {
	log := logger.FromContext(ctx)

	label := "Password"
	if hashed {
		label = "Digest"
	}

	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if input == "" {
				return errors.New("please enter a value")
			}
			if hashed {
				if _, _, err := pwned.NormalizeDigest(input); err != nil {
					return errors.New("input is not a valid SHA-1 or NTLM hex digest")
				}
			}

			return nil
		},
	}
	if !hashed {
		prompt.Mask = '*'
	}

	log.Info().Msg("Running interactive session. ^C to exit")
	for {
		credential, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				log.Info().Msg("Goodbye")

				return nil
			}

			return err
		}

		if err = checkOne(ctx, checker, credential); err != nil && !errors.Is(err, pwned.ErrCompromised) {
			log.Error().Err(err).Msg("check failed")
		}
	}
}
