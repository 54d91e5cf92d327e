package client

import (
	"fmt"
	"net/url"
	"strings"
)

// --------------------------------------------------------------------------
// Client
// --------------------------------------------------------------------------

// Client is the handle for all API calls. It owns the parsed endpoint list
// and the transport. A Client is immutable after construction.
type Client struct {
	endpoints []url.URL
	transport IHTTPTransport
	config    ClientConfig
}

// New creates a new Client for the given configuration using the default
// net/http based transport.
func New(config ClientConfig) (*Client, error) {
	transport, err := NewHTTPTransport(config)
	if err != nil {
		return nil, err
	}
	return NewWithTransport(config, transport)
}

// NewWithTransport creates a new Client with a caller-supplied transport.
// This is mainly useful for testing and for applications that need full
// control over the HTTP layer.
func NewWithTransport(config ClientConfig, transport IHTTPTransport) (*Client, error) {
	if len(config.Endpoints) == 0 {
		return nil, fmt.Errorf("no endpoints provided")
	}

	// Parse each endpoint URL
	parsedURLs := make([]url.URL, len(config.Endpoints))
	for i, endpoint := range config.Endpoints {
		parsedURL, err := url.Parse(endpoint)
		if err != nil {
			return nil, fmt.Errorf("invalid endpoint %q: %v", endpoint, err)
		}
		if !parsedURL.IsAbs() || parsedURL.Host == "" {
			return nil, fmt.Errorf("endpoint %q is not an absolute URL", endpoint)
		}
		parsedURLs[i] = *parsedURL
	}

	Logger.Debugf("Created client for %d endpoints", len(parsedURLs))

	return &Client{
		endpoints: parsedURLs,
		transport: transport,
		config:    config,
	}, nil
}

// Endpoints returns a copy of the configured endpoint list in failover order.
func (c *Client) Endpoints() []url.URL {
	endpoints := make([]url.URL, len(c.endpoints))
	copy(endpoints, c.endpoints)
	return endpoints
}

// --------------------------------------------------------------------------
// URI construction
// --------------------------------------------------------------------------

// BuildURI constructs the full URI for an API call against one endpoint.
// The path is joined to the endpoint base URL and the optional query is
// appended. A malformed combination yields a KindInvalidURI error before
// any network I/O.
func BuildURI(endpoint url.URL, path string, query url.Values) (string, error) {
	raw := strings.TrimRight(endpoint.String(), "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		raw += "?" + query.Encode()
	}

	// Validate the combined URI. The parser accepts some characters (like
	// a literal space) that are not legal in a request line, so the URI is
	// additionally required to survive a parse/serialize round trip: the
	// output differs exactly when the input held characters that would
	// have needed escaping.
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return "", NewError(KindInvalidURI, fmt.Sprintf("invalid uri %q: %v", raw, err))
	}
	if parsed.String() != raw {
		return "", NewError(KindInvalidURI, fmt.Sprintf("invalid uri %q: contains characters that must be escaped", raw))
	}

	return raw, nil
}

// GetRequest returns a request builder for a plain GET of the given path.
// Used by the API packages for all body-less read calls.
func GetRequest(path string) BuildRequestFunc {
	return func(endpoint url.URL) (HTTPRequest, error) {
		uri, err := BuildURI(endpoint, path, nil)
		if err != nil {
			return HTTPRequest{}, err
		}
		return HTTPRequest{Method: "GET", URI: uri}, nil
	}
}

// --------------------------------------------------------------------------
// Cluster health and versions
// --------------------------------------------------------------------------

// Health is the payload of the /health endpoint of a single member.
type Health struct {
	// "true" if the member considers itself healthy
	Health string `json:"health"`
}

// VersionInfo is the payload of the /version endpoint of a single member.
type VersionInfo struct {
	// The semantic version of the etcd server
	EtcdServer string `json:"etcdserver"`
	// The semantic version of the etcd cluster protocol
	EtcdCluster string `json:"etcdcluster"`
}

// Health queries the health of every cluster member concurrently and
// returns one result per endpoint in completion order.
func (c *Client) Health() <-chan Result[Health] {
	return RequestFanout[Health](c, GetRequest("health"))
}

// Versions queries the version of every cluster member concurrently and
// returns one result per endpoint in completion order.
func (c *Client) Versions() <-chan Result[VersionInfo] {
	return RequestFanout[VersionInfo](c, GetRequest("version"))
}
