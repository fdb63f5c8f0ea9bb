// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the HTTP client for the Pwned Passwords
// range API. It speaks the k-anonymity protocol: only a five character
// digest prefix is sent over the wire, the response is the raw
// SUFFIX:COUNT corpus for that prefix, and matching happens on the
// caller's side.
package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pwned-check/internal/config"
	"github.com/MKhiriev/go-pwned-check/internal/logger"
	"github.com/MKhiriev/go-pwned-check/internal/pwned"
)

// RangeAPI fetches SUFFIX:COUNT ranges over HTTPS. It implements
// pwned.RangeClient.
type RangeAPI struct {
	client  *resty.Client
	padding bool
	logger  *logger.Logger
}

// NewRangeAPI builds a range API client from the API configuration group.
// The base URL may omit the scheme; https is assumed.
func NewRangeAPI(apiCfg config.ClientAPI, log *logger.Logger) (*RangeAPI, error) {
	baseURL, err := normalizeBaseURL(apiCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("range api address: %w", err)
	}

	client := resty.NewWithClient(newHTTPClient(apiCfg)).
		SetBaseURL(baseURL).
		SetTimeout(apiCfg.RequestTimeout).
		SetHeader("User-Agent", apiCfg.UserAgent)

	return &RangeAPI{client: client, padding: apiCfg.Padding, logger: log}, nil
}

// FetchRange returns the raw response body for one digest prefix.
// With padding enabled the server mixes zero-count filler entries into
// the body so that response sizes do not leak which range was asked for.
func (r *RangeAPI) FetchRange(ctx context.Context, prefix string, mode pwned.HashMode) (string, error) {
	req := r.client.R().SetContext(ctx)
	if mode == pwned.ModeNTLM {
		req.SetQueryParam("mode", "ntlm")
	}
	if r.padding {
		req.SetHeader("Add-Padding", "true")
	}

	resp, err := req.Get("/range/" + prefix)
	if err != nil {
		return "", fmt.Errorf("range request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	r.logger.Debug().
		Str("prefix", prefix).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("range fetched")

	return string(resp.Body()), nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse address: %w", err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("address %q has no host", raw)
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}
