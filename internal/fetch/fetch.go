// Package fetch retrieves raw page markup from external job posting
// URLs. It is the upstream collaborator of the analysis core: its
// output is handed to extraction, never interpreted here.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds a single request attempt.
	DefaultTimeout = 10 * time.Second

	// MaxBodyBytes truncates oversized pages to protect memory.
	MaxBodyBytes = 2_000_000

	// minUsableBody is the markup length below which a fetch is treated
	// as failed rather than passed downstream.
	minUsableBody = 200

	maxAttempts     = 3
	baseBackoff     = 800 * time.Millisecond
	defaultUA       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	acceptHeader    = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	acceptLangValue = "en-US,en;q=0.9"
)

// Machine-readable failure reasons carried in Result.Reason.
const (
	ReasonTimeout      = "network_timeout"
	ReasonNonHTML      = "non_html_content"
	ReasonTooSmall     = "empty_or_too_small"
	ReasonCaptcha      = "blocked_by_site_captcha"
	ReasonHTTPErrorFmt = "http_error_%d"
)

var captchaKeywords = []string{
	"captcha",
	"robot check",
	"verify you are human",
	"cloudflare",
	"are you a robot",
}

// Result is the outcome of one fetch. Success carries markup; failure
// carries a machine-readable reason so callers can report something
// more useful than a bare error string.
type Result struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"status_code,omitempty"`
	HTML       string `json:"html,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// Error represents a failure before any HTTP exchange happened, such
// as a malformed or disallowed URL.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: defaultUA,
	}
}

// URL retrieves markup from a job posting URL. Only http/https schemes
// are allowed. Transient failures (429 and 5xx) are retried with
// linear backoff up to maxAttempts. The returned Result is never nil
// when err is nil: a blocked, non-HTML, or too-small page comes back
// as Success=false with a reason, not as an error.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if err := validateURL(urlStr); err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: opts.Timeout}

	var resp *http.Response
	var lastStatus int
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, &Error{URL: urlStr, Message: "fetch canceled", Cause: ctx.Err()}
			case <-time.After(time.Duration(attempt) * baseBackoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
		if err != nil {
			return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
		}
		req.Header.Set("User-Agent", opts.UserAgent)
		req.Header.Set("Accept", acceptHeader)
		req.Header.Set("Accept-Language", acceptLangValue)
		for key, value := range opts.Headers {
			req.Header.Set(key, value)
		}

		resp, err = client.Do(req)
		if err != nil {
			if isTimeout(err) {
				return &Result{Success: false, Reason: ReasonTimeout}, nil
			}
			return &Result{Success: false, Reason: fmt.Sprintf("network_error: %v", err)}, nil
		}

		lastStatus = resp.StatusCode
		if !isRetryable(resp.StatusCode) {
			break
		}
		_ = resp.Body.Close()
		resp = nil
	}

	if resp == nil {
		return &Result{
			Success:    false,
			StatusCode: lastStatus,
			Reason:     fmt.Sprintf(ReasonHTTPErrorFmt, lastStatus),
		}, nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &Result{
			Success:    false,
			StatusCode: resp.StatusCode,
			Reason:     fmt.Sprintf(ReasonHTTPErrorFmt, resp.StatusCode),
		}, nil
	}

	if !isHTMLContentType(resp.Header.Get("Content-Type")) {
		return &Result{
			Success:    false,
			StatusCode: resp.StatusCode,
			Reason:     ReasonNonHTML,
		}, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return &Result{
			Success:    false,
			StatusCode: resp.StatusCode,
			Reason:     fmt.Sprintf("network_error: %v", err),
		}, nil
	}
	html := string(body)

	if len(strings.TrimSpace(html)) < minUsableBody {
		return &Result{
			Success:    false,
			StatusCode: resp.StatusCode,
			HTML:       html,
			Reason:     ReasonTooSmall,
		}, nil
	}

	if looksLikeCaptcha(html) {
		return &Result{
			Success:    false,
			StatusCode: resp.StatusCode,
			HTML:       html,
			Reason:     ReasonCaptcha,
		}, nil
	}

	return &Result{
		Success:    true,
		StatusCode: resp.StatusCode,
		HTML:       html,
	}, nil
}

func validateURL(urlStr string) error {
	if strings.TrimSpace(urlStr) == "" {
		return &Error{URL: urlStr, Message: "URL is empty"}
	}
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &Error{URL: urlStr, Message: "only http/https URLs are allowed"}
	}
	if parsed.Host == "" {
		return &Error{URL: urlStr, Message: "invalid URL"}
	}
	return nil
}

func isRetryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func isHTMLContentType(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "text/html") || strings.Contains(ct, "application/xhtml")
}

func looksLikeCaptcha(html string) bool {
	lower := strings.ToLower(html)
	for _, word := range captchaKeywords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
