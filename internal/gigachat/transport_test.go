package gigachat

import (
	"context"
	"encoding/pem"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serverCertPEM(t *testing.T, srv *httptest.Server) []byte {
	t.Helper()
	cert := srv.Certificate()
	require.NotNil(t, cert)
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw})
}

func TestTransportTrustsConfiguredCA(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "value", r.Header.Get("X-Custom"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("hello"))
	}))
	defer srv.Close()

	transport, err := NewTransport(serverCertPEM(t, srv), 5*time.Second)
	require.NoError(t, err)

	resp, err := transport.Do(context.Background(), "test", http.MethodGet, srv.URL, map[string]string{"X-Custom": "value"}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "hello", string(resp.Body))
}

func TestTransportRejectsUnknownIssuer(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	// A pool holding an unrelated certificate must not trust the server.
	other := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer other.Close()

	transport, err := NewTransport(serverCertPEM(t, other), 5*time.Second)
	require.NoError(t, err)

	_, err = transport.Do(context.Background(), "test", http.MethodGet, srv.URL, nil, nil)
	var cerr *ConnectivityError
	require.ErrorAs(t, err, &cerr, "a TLS handshake failure is a connectivity error, not a provider error")
}

func TestNewTransportRejectsGarbageBundle(t *testing.T) {
	_, err := NewTransport([]byte("not a pem bundle"), time.Second)
	require.Error(t, err)
}

func TestTransportHTTPErrorIsNotConnectivityError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("down"))
	}))
	defer srv.Close()

	transport, err := NewTransport(nil, 5*time.Second)
	require.NoError(t, err)

	resp, err := transport.Do(context.Background(), "test", http.MethodGet, srv.URL, nil, nil)
	require.NoError(t, err, "an HTTP error status is surfaced in the response, not as an error")
	assert.Equal(t, http.StatusServiceUnavailable, resp.Status)
	assert.Equal(t, "down", string(resp.Body))
}

func TestTransportTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	transport, err := NewTransport(nil, 50*time.Millisecond)
	require.NoError(t, err)

	_, err = transport.Do(context.Background(), "test", http.MethodGet, srv.URL, nil, nil)
	var cerr *ConnectivityError
	require.ErrorAs(t, err, &cerr)
}

func TestTransportHeaderKeyCasePreserved(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	head := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		// Read until the end of the request head.
		var raw strings.Builder
		buf := make([]byte, 1024)
		for !strings.Contains(raw.String(), "\r\n\r\n") {
			n, err := conn.Read(buf)
			if n > 0 {
				raw.Write(buf[:n])
			}
			if err != nil {
				break
			}
		}
		head <- raw.String()
		_, _ = conn.Write([]byte("HTTP/1.1 200 OK\r\nContent-Length: 0\r\nConnection: close\r\n\r\n"))
	}()

	transport, err := NewTransport(nil, 5*time.Second)
	require.NoError(t, err)

	resp, err := transport.Do(context.Background(), "oauth", http.MethodPost,
		"http://"+ln.Addr().String(), map[string]string{"RqUID": "abc"}, []byte("scope=test"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)

	// Mixed-case keys must reach the wire exactly as given, not as Rquid.
	raw := <-head
	assert.Contains(t, raw, "RqUID: abc")
	assert.NotContains(t, raw, "Rquid:")
}

func TestLoadCABundleEmptyPath(t *testing.T) {
	pem, err := LoadCABundle("")
	require.NoError(t, err)
	assert.Nil(t, pem)
}

func TestLoadCABundleMissingFile(t *testing.T) {
	_, err := LoadCABundle("/nonexistent/ca.pem")
	require.Error(t, err)
}
