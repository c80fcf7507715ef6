// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds how much of a failed response ends up in the error.
const maxErrorBody = 200

// statusError turns a non-2xx word list response into one of the cause
// sentinels. It returns nil for success.
func statusError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	detail := strings.TrimSpace(resp.String())
	if r := []rune(detail); len(r) > maxErrorBody {
		detail = string(r[:maxErrorBody]) + "…"
	}
	if detail == "" {
		detail = http.StatusText(code)
	}

	var cause error
	switch {
	case code == http.StatusNotFound || code == http.StatusGone:
		cause = ErrWordListNotFound
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		cause = ErrAccessDenied
	case code == http.StatusTooManyRequests:
		cause = ErrRateLimited
	case code >= http.StatusInternalServerError:
		cause = ErrSourceUnavailable
	default:
		return fmt.Errorf("word list request returned %d: %s", code, detail)
	}

	return fmt.Errorf("%w (%d): %s", cause, code, detail)
}
