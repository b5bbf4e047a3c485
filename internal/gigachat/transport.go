// Package gigachat implements the gateway to the GigaChat API: a
// trust-anchored HTTP transport, the OAuth bearer token lifecycle, and the
// chat completion client.
package gigachat

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"
)

// Response is the uncompressed result of a provider call.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Transport performs outbound HTTPS requests to the GigaChat endpoints.
//
// The provider's certificate chain is issued by the Russian trusted root CA,
// which public trust stores do not carry, so the transport is built around a
// CA bundle shipped with the service instead of the system default.
type Transport struct {
	client *http.Client
}

// LoadCABundle reads the PEM bundle at path. An empty path yields nil,
// which makes NewTransport fall back to the system trust store.
func LoadCABundle(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read CA bundle: %w", err)
	}
	return pem, nil
}

// NewTransport creates a Transport trusting exactly the authorities in caPEM.
// If caPEM is empty the system pool is used. timeout bounds every call
// end to end.
func NewTransport(caPEM []byte, timeout time.Duration) (*Transport, error) {
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	if len(caPEM) > 0 {
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caPEM) {
			return nil, fmt.Errorf("no certificates found in CA bundle")
		}
		tr.TLSClientConfig = &tls.Config{RootCAs: pool}
	}

	return &Transport{
		client: &http.Client{
			Transport: tr,
			Timeout:   timeout,
		},
	}, nil
}

// Do issues a single request and reads the full response body. Header keys
// are applied as given. Transport-level failures come back as
// *ConnectivityError; HTTP-level error statuses are returned in Response for
// the caller to interpret.
func (t *Transport) Do(ctx context.Context, op, method, url string, headers map[string]string, body []byte) (*Response, error) {
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, v := range headers {
		// Assigned directly, bypassing MIME canonicalization: the provider
		// expects keys like RqUID exactly as given.
		req.Header[k] = []string{v}
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, &ConnectivityError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectivityError{Op: op, Err: err}
	}

	return &Response{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   data,
	}, nil
}
