package client

import (
	"net/http"
	"strconv"
)

// Well-known response headers carrying cluster metadata
const (
	headerClusterID = "X-Etcd-Cluster-Id"
	headerEtcdIndex = "X-Etcd-Index"
	headerRaftIndex = "X-Raft-Index"
	headerRaftTerm  = "X-Raft-Term"
)

// --------------------------------------------------------------------------
// Response Envelope
// --------------------------------------------------------------------------

// Response pairs the decoded payload of a successful API call with the
// cluster metadata extracted from the response headers. Ownership passes
// entirely to the caller; the envelope has no backing state.
type Response[T any] struct {
	// The JSON-decoded payload specific to the calling API
	Data T
	// Cluster metadata from the response headers
	ClusterInfo ClusterInfo
}

// Result is one slot of a fan-out sequence: either a Response or an error,
// never both.
type Result[T any] struct {
	Response *Response[T]
	Err      error
}

// --------------------------------------------------------------------------
// Cluster Info
// --------------------------------------------------------------------------

// ClusterInfo holds cluster-wide counters parsed from response headers.
// Every field is optional: a missing or unparsable header maps to the nil
// value, never to an error. The values are purely informational and are
// not validated against prior responses.
type ClusterInfo struct {
	// The unique identifier of the cluster
	ClusterID string
	// The current etcd index of the cluster
	EtcdIndex *uint64
	// The current raft index of the cluster
	RaftIndex *uint64
	// The current raft term of the cluster
	RaftTerm *uint64
}

// ParseClusterInfo extracts the cluster metadata from a set of response
// headers. The function is pure and performs no I/O, so it can be tested
// independently of the transport.
func ParseClusterInfo(header http.Header) ClusterInfo {
	return ClusterInfo{
		ClusterID: header.Get(headerClusterID),
		EtcdIndex: parseUintHeader(header, headerEtcdIndex),
		RaftIndex: parseUintHeader(header, headerRaftIndex),
		RaftTerm:  parseUintHeader(header, headerRaftTerm),
	}
}

// parseUintHeader parses a single header value as an unsigned integer.
// A missing header or a parse failure maps to nil.
func parseUintHeader(header http.Header, name string) *uint64 {
	value := header.Get(name)
	if value == "" {
		return nil
	}

	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil
	}

	return &parsed
}
