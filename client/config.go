package client

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Client configuration struct
// --------------------------------------------------------------------------

// ClientConfig holds all configuration parameters for the etcd client.
// Endpoints is the only mandatory field; the order of the endpoints
// defines the failover priority and carries no other meaning.
type ClientConfig struct {
	// Endpoints are the base URLs of the cluster members (e.g. "http://127.0.0.1:2379")
	Endpoints []string

	// Timeout for a single HTTP request (0 means no timeout)
	TimeoutSecond int

	// Optional HTTP basic auth credentials
	Username string
	Password string

	// Optional TLS settings for HTTPS endpoints
	TLSCaFile   string
	TLSCertFile string
	TLSKeyFile  string

	// Logging configuration
	LogLevel string
}

// HasBasicAuth checks whether basic auth credentials are configured
func (c *ClientConfig) HasBasicAuth() bool {
	return c.Username != ""
}

// HasTLS checks whether any TLS related option is configured
func (c *ClientConfig) HasTLS() bool {
	return c.TLSCaFile != "" || c.TLSCertFile != "" || c.TLSKeyFile != ""
}

// String returns a formatted string representation of the configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	// General client settings
	addSection("Client Configuration")
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))
	addField("Basic Auth", fmt.Sprintf("%t", c.HasBasicAuth()))
	addField("TLS", fmt.Sprintf("%t", c.HasTLS()))
	addField("Log Level", c.LogLevel)

	// Endpoints
	addSection("Endpoints")
	for i, endpoint := range c.Endpoints {
		addField(strconv.Itoa(i), endpoint)
	}

	return sb.String()
}
