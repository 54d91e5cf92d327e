package members

import (
	"encoding/json"
	"net/url"

	"github.com/ValentinKolb/etcdc/client"
)

// --------------------------------------------------------------------------
// Types
// --------------------------------------------------------------------------

// Member describes one member of the cluster.
type Member struct {
	// The unique identifier of the member
	ID string `json:"id"`
	// The human readable name of the member
	Name string `json:"name"`
	// The URLs the member uses for raft peer traffic
	PeerURLs []string `json:"peerURLs"`
	// The URLs the member serves client requests on
	ClientURLs []string `json:"clientURLs"`
}

// memberList is the payload of the list call
type memberList struct {
	Members []Member `json:"members"`
}

// peerURLs is the request body for add and update calls
type peerURLs struct {
	PeerURLs []string `json:"peerURLs"`
}

// --------------------------------------------------------------------------
// Operations
// --------------------------------------------------------------------------

// List returns all members of the cluster.
func List(c *client.Client) (*client.Response[[]Member], error) {
	resp, err := client.RequestFailover[memberList](c, client.GetRequest("v2/members"))
	if err != nil {
		return nil, err
	}

	return &client.Response[[]Member]{
		Data:        resp.Data.Members,
		ClusterInfo: resp.ClusterInfo,
	}, nil
}

// Add registers a new member with the given peer URLs. The new member is
// returned as etcd recorded it.
func Add(c *client.Client, urls []string) (*client.Response[Member], error) {
	return client.RequestFailover[Member](c, jsonRequest("POST", "v2/members", peerURLs{PeerURLs: urls}))
}

// Delete removes the member with the given ID from the cluster.
func Delete(c *client.Client, id string) (*client.Response[struct{}], error) {
	path := "v2/members/" + url.PathEscape(id)

	return client.RequestFailover[struct{}](c, func(endpoint url.URL) (client.HTTPRequest, error) {
		uri, err := client.BuildURI(endpoint, path, nil)
		if err != nil {
			return client.HTTPRequest{}, err
		}
		return client.HTTPRequest{Method: "DELETE", URI: uri}, nil
	})
}

// Update replaces the peer URLs of the member with the given ID.
func Update(c *client.Client, id string, urls []string) (*client.Response[struct{}], error) {
	path := "v2/members/" + url.PathEscape(id)

	return client.RequestFailover[struct{}](c, jsonRequest("PUT", path, peerURLs{PeerURLs: urls}))
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// jsonRequest returns a request builder for a JSON-bodied call
func jsonRequest(method, path string, payload any) client.BuildRequestFunc {
	return func(endpoint url.URL) (client.HTTPRequest, error) {
		uri, err := client.BuildURI(endpoint, path, nil)
		if err != nil {
			return client.HTTPRequest{}, err
		}

		body, err := json.Marshal(payload)
		if err != nil {
			return client.HTTPRequest{}, err
		}

		return client.HTTPRequest{
			Method:      method,
			URI:         uri,
			Body:        body,
			ContentType: "application/json",
		}, nil
	}
}
