// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-hsk-keeper/internal/config"
	"github.com/MKhiriev/go-hsk-keeper/internal/logger"
	"github.com/MKhiriev/go-hsk-keeper/internal/validators"
	"github.com/MKhiriev/go-hsk-keeper/models"
)

// NewWordListSource returns the [WordListSource] matching cfg.WordList:
// an HTTP source for http:// and https:// URLs, a file source otherwise.
func NewWordListSource(cfg config.ClientSource, validator validators.Validator, logger *logger.Logger) (WordListSource, error) {
	location := strings.TrimSpace(cfg.WordList)
	if location == "" {
		return nil, fmt.Errorf("%w: empty location", ErrUnsupportedSource)
	}

	if isURL(location) {
		client := resty.New().
			SetTimeout(cfg.RequestTimeout).
			SetHeader("Accept", "application/json")

		return &httpWordListSource{
			client:    client,
			url:       location,
			validator: validator,
			logger:    logger,
		}, nil
	}

	return &fileWordListSource{
		path:      strings.TrimPrefix(location, "file://"),
		validator: validator,
		logger:    logger,
	}, nil
}

func isURL(location string) bool {
	u, err := url.Parse(location)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

type httpWordListSource struct {
	client    *resty.Client
	url       string
	validator validators.Validator
	logger    *logger.Logger
}

// FetchWordList implements [WordListSource]. It GETs the configured URL and
// decodes the body regardless of the Content-Type, since static hosts often
// serve JSON as text/plain.
func (h *httpWordListSource) FetchWordList(ctx context.Context) ([]models.RawWord, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(h.url)
	if err != nil {
		h.logger.Err(err).Str("func", "httpWordListSource.FetchWordList").Str("url", h.url).Msg("request failed")
		return nil, fmt.Errorf("%w: word list request: %w", ErrLoadFailure, err)
	}
	if err = statusError(resp); err != nil {
		h.logger.Err(err).Str("func", "httpWordListSource.FetchWordList").Int("status", resp.StatusCode()).Msg("unexpected response")
		return nil, fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}

	words, err := decodeWordList(ctx, bytes.NewReader(resp.Body()), h.validator)
	if err != nil {
		h.logger.Err(err).Str("func", "httpWordListSource.FetchWordList").Msg("invalid word list")
		return nil, err
	}

	h.logger.Debug().Str("func", "httpWordListSource.FetchWordList").Int("words", len(words)).Msg("word list fetched")
	return words, nil
}

type fileWordListSource struct {
	path      string
	validator validators.Validator
	logger    *logger.Logger
}

// FetchWordList implements [WordListSource] for a local JSON file.
func (f *fileWordListSource) FetchWordList(ctx context.Context) ([]models.RawWord, error) {
	file, err := os.Open(f.path)
	if err != nil {
		f.logger.Err(err).Str("func", "fileWordListSource.FetchWordList").Str("path", f.path).Msg("cannot open word list")
		return nil, fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}
	defer file.Close()

	words, err := decodeWordList(ctx, file, f.validator)
	if err != nil {
		f.logger.Err(err).Str("func", "fileWordListSource.FetchWordList").Str("path", f.path).Msg("invalid word list")
		return nil, err
	}

	f.logger.Debug().Str("func", "fileWordListSource.FetchWordList").Int("words", len(words)).Msg("word list read")
	return words, nil
}

func decodeWordList(ctx context.Context, r io.Reader, validator validators.Validator) ([]models.RawWord, error) {
	var words []models.RawWord
	if err := json.NewDecoder(r).Decode(&words); err != nil {
		return nil, fmt.Errorf("%w: decode word list: %w", ErrLoadFailure, err)
	}

	if err := validator.Validate(ctx, words); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}

	return words, nil
}
