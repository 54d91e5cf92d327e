package kv

import (
	"net/url"
	"strings"

	"github.com/ValentinKolb/etcdc/client"
)

// --------------------------------------------------------------------------
// Types
// --------------------------------------------------------------------------

// Action is the kind of operation a key-value response reports.
type Action string

const (
	ActionGet    Action = "get"
	ActionSet    Action = "set"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionExpire Action = "expire"
)

// KeyValueInfo is the payload of every key space operation.
type KeyValueInfo struct {
	// The operation that was performed
	Action Action `json:"action"`
	// The current state of the node the operation was performed on
	Node *Node `json:"node,omitempty"`
	// The previous state of the node, if it existed before
	PrevNode *Node `json:"prevNode,omitempty"`
}

// Node is one entry in the key space, either a key-value pair or a
// directory containing further nodes.
type Node struct {
	// The full key of the node
	Key string `json:"key,omitempty"`
	// The value of the node (nil for directories)
	Value *string `json:"value,omitempty"`
	// Whether the node is a directory
	Dir bool `json:"dir,omitempty"`
	// The child nodes of a directory (only filled for recursive gets)
	Nodes []Node `json:"nodes,omitempty"`
	// The etcd index at which the node was created
	CreatedIndex uint64 `json:"createdIndex,omitempty"`
	// The etcd index at which the node was last modified
	ModifiedIndex uint64 `json:"modifiedIndex,omitempty"`
}

// GetOptions control the behavior of Get.
type GetOptions struct {
	// Recursive returns the whole subtree of a directory
	Recursive bool
	// Sort returns directory listings in sorted order
	Sort bool
	// Quorum routes the read through the raft leader for linearizability
	Quorum bool
}

// --------------------------------------------------------------------------
// Operations
// --------------------------------------------------------------------------

// Get reads a key or directory.
func Get(c *client.Client, key string, options GetOptions) (*client.Response[KeyValueInfo], error) {
	query := url.Values{}
	if options.Recursive {
		query.Set("recursive", "true")
	}
	if options.Sort {
		query.Set("sorted", "true")
	}
	if options.Quorum {
		query.Set("quorum", "true")
	}

	return request(c, "GET", key, query, nil)
}

// Set inserts or updates a key-value pair, regardless of its prior state.
func Set(c *client.Client, key, value string) (*client.Response[KeyValueInfo], error) {
	body := url.Values{}
	body.Set("value", value)

	return request(c, "PUT", key, nil, body)
}

// Create inserts a key-value pair. It fails with an API error if the key
// already exists.
func Create(c *client.Client, key, value string) (*client.Response[KeyValueInfo], error) {
	query := url.Values{}
	query.Set("prevExist", "false")

	body := url.Values{}
	body.Set("value", value)

	return request(c, "PUT", key, query, body)
}

// Update updates an existing key-value pair. It fails with an API error if
// the key does not exist.
func Update(c *client.Client, key, value string) (*client.Response[KeyValueInfo], error) {
	query := url.Values{}
	query.Set("prevExist", "true")

	body := url.Values{}
	body.Set("value", value)

	return request(c, "PUT", key, query, body)
}

// Delete deletes a key-value pair.
func Delete(c *client.Client, key string) (*client.Response[KeyValueInfo], error) {
	return request(c, "DELETE", key, nil, nil)
}

// CreateDir creates an empty directory. It fails with an API error if the
// key already exists.
func CreateDir(c *client.Client, key string) (*client.Response[KeyValueInfo], error) {
	query := url.Values{}
	query.Set("dir", "true")
	query.Set("prevExist", "false")

	return request(c, "PUT", key, query, nil)
}

// DeleteDir deletes a directory. Non-empty directories are only deleted
// when recursive is set.
func DeleteDir(c *client.Client, key string, recursive bool) (*client.Response[KeyValueInfo], error) {
	query := url.Values{}
	query.Set("dir", "true")
	if recursive {
		query.Set("recursive", "true")
	}

	return request(c, "DELETE", key, query, nil)
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// escapeKey percent-escapes each segment of a key so that keys containing
// reserved characters (spaces, '%', '?') still form a valid request URI.
// Slashes keep their meaning as segment separators.
func escapeKey(key string) string {
	segments := strings.Split(strings.TrimLeft(key, "/"), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}

// request dispatches one key space operation with failover
func request(c *client.Client, method, key string, query url.Values, body url.Values) (*client.Response[KeyValueInfo], error) {
	path := "v2/keys/" + escapeKey(key)

	return client.RequestFailover[KeyValueInfo](c, func(endpoint url.URL) (client.HTTPRequest, error) {
		uri, err := client.BuildURI(endpoint, path, query)
		if err != nil {
			return client.HTTPRequest{}, err
		}

		req := client.HTTPRequest{Method: method, URI: uri}
		if body != nil {
			req.Body = []byte(body.Encode())
			req.ContentType = "application/x-www-form-urlencoded"
		}
		return req, nil
	})
}
