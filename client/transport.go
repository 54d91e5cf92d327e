package client

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// --------------------------------------------------------------------------
// Transport Interface
// --------------------------------------------------------------------------

// HTTPRequest is one fully-formed request against a single endpoint.
type HTTPRequest struct {
	// The HTTP method (GET, PUT, POST, DELETE)
	Method string
	// The absolute request URI
	URI string
	// The optional request body (nil for body-less requests)
	Body []byte
	// The content type of the body (ignored if Body is nil)
	ContentType string
}

// IHTTPTransport is the interface for the HTTP transport layer. It owns
// connection pooling, TLS and credential attachment. A transport performs
// exactly one attempt per Send call - retry and failover are the
// dispatcher's responsibility.
type IHTTPTransport interface {
	// Send performs the request and returns the raw response. The returned
	// error is non-nil only for failures before a complete HTTP response
	// was received (DNS, connect, TLS handshake, timeout).
	Send(req HTTPRequest) (status int, header http.Header, body []byte, err error)
}

// --------------------------------------------------------------------------
// Default Transport (net/http)
// --------------------------------------------------------------------------

// NewHTTPTransport creates the default transport for the given config.
// It returns an error if the configured TLS material cannot be loaded.
func NewHTTPTransport(config ClientConfig) (IHTTPTransport, error) {
	// Create the inner transport with default pooling settings
	inner := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     time.Duration(config.TimeoutSecond) * time.Second,
	}

	// Configure TLS if requested
	if config.HasTLS() {
		tlsConfig, err := buildTLSConfig(config)
		if err != nil {
			return nil, err
		}
		inner.TLSClientConfig = tlsConfig
	}

	// Create client
	client := &http.Client{
		Transport: inner,
		Timeout:   time.Duration(config.TimeoutSecond) * time.Second,
	}

	return &httpTransport{
		client:   client,
		username: config.Username,
		password: config.Password,
	}, nil
}

type httpTransport struct {
	client   *http.Client
	username string
	password string
}

// Send implements IHTTPTransport
func (t *httpTransport) Send(req HTTPRequest) (int, http.Header, []byte, error) {
	// Create the request
	var reader io.Reader
	if req.Body != nil {
		reader = bytes.NewReader(req.Body)
	}
	httpRequest, err := http.NewRequest(req.Method, req.URI, reader)
	if err != nil {
		return 0, nil, nil, err
	}

	// Attach content type and credentials
	if req.Body != nil && req.ContentType != "" {
		httpRequest.Header.Set("Content-Type", req.ContentType)
	}
	if t.username != "" {
		httpRequest.SetBasicAuth(t.username, t.password)
	}

	// Send the request
	httpResponse, err := t.client.Do(httpRequest)
	if err != nil {
		return 0, nil, nil, err
	}
	defer func() {
		if err := httpResponse.Body.Close(); err != nil {
			TransportLogger.Errorf("Failed to close response body: %v", err)
		}
	}()

	// Read the response body
	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return 0, nil, nil, err
	}

	return httpResponse.StatusCode, httpResponse.Header, body, nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// buildTLSConfig loads the configured CA bundle and client certificate
func buildTLSConfig(config ClientConfig) (*tls.Config, error) {
	tlsConfig := &tls.Config{}

	// Load the CA bundle
	if config.TLSCaFile != "" {
		pem, err := os.ReadFile(config.TLSCaFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA file: %v", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in CA file %s", config.TLSCaFile)
		}
		tlsConfig.RootCAs = pool
	}

	// Load the client certificate
	if config.TLSCertFile != "" || config.TLSKeyFile != "" {
		cert, err := tls.LoadX509KeyPair(config.TLSCertFile, config.TLSKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load client certificate: %v", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return tlsConfig, nil
}
