// Package importer delivers the authored catalog to the vehicle-speakers
// import API in a single request, and exports it to a file when the API
// cannot take it.
package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tunexa/audiodb/engine/catalog"
)

// DefaultTimeout bounds the one import request end to end.
const DefaultTimeout = 30 * time.Second

// ErrConnection marks failures to reach the API at all, as opposed to
// responses the API refused. Callers branch on it to suggest checking
// that the service is up.
var ErrConnection = errors.New("cannot connect to import API")

// StatusError is a non-200 response, kept with the raw body so the
// operator sees exactly what the API said.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// Importer posts the catalog to one configured endpoint.
type Importer struct {
	endpoint string
	client   *http.Client
}

// New returns an Importer for endpoint. A non-positive timeout falls
// back to DefaultTimeout.
func New(endpoint string, timeout time.Duration) *Importer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Importer{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Endpoint returns the configured import URL.
func (imp *Importer) Endpoint() string { return imp.endpoint }

// Send posts the whole catalog as one JSON body and decodes the API's
// import report. There are no retries at this boundary: a failed attempt
// surfaces immediately so the caller can fall back to a file export.
func (imp *Importer) Send(ctx context.Context, cat catalog.Catalog) (Report, error) {
	body, err := marshalCatalog(cat, false)
	if err != nil {
		return Report{}, fmt.Errorf("encoding catalog: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, imp.endpoint, bytes.NewReader(body))
	if err != nil {
		return Report{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := imp.client.Do(req)
	if err != nil {
		return Report{}, classify(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Report{}, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Report{}, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	// Absent fields decode to zero values; a 200 with an empty body is
	// not a report we can trust.
	var rep Report
	if err := json.Unmarshal(raw, &rep); err != nil {
		return Report{}, fmt.Errorf("decoding response: %w", err)
	}
	return rep, nil
}

// classify separates "nothing answered" from every other transport
// failure. Timeouts stay generic: the service was likely up, just slow.
func classify(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) && !uerr.Timeout() {
		var opErr *net.OpError
		var dnsErr *net.DNSError
		if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
			return fmt.Errorf("%w: %v", ErrConnection, uerr.Err)
		}
	}
	return fmt.Errorf("sending catalog: %w", err)
}

// marshalCatalog encodes without HTML escaping so names like
// "Bang & Olufsen" cross the wire byte for byte.
func marshalCatalog(cat catalog.Catalog, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(cat); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
