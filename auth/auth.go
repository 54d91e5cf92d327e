package auth

import (
	"encoding/json"
	"net/url"

	"github.com/ValentinKolb/etcdc/client"
)

// --------------------------------------------------------------------------
// Types
// --------------------------------------------------------------------------

// AuthStatus is the payload of the status call.
type AuthStatus struct {
	// Whether the auth system is enabled
	Enabled bool `json:"enabled"`
}

// User is an existing user as etcd reports it.
type User struct {
	// The name of the user
	User string `json:"user"`
	// The names of the roles granted to the user
	Roles []string `json:"roles,omitempty"`
}

// NewUser is the request payload for creating or updating a user.
type NewUser struct {
	// The name of the user
	User string `json:"user"`
	// The password of the user
	Password string `json:"password,omitempty"`
	// The names of the roles to grant
	Roles []string `json:"roles,omitempty"`
}

// Role is a named set of key space permissions.
type Role struct {
	// The name of the role
	Role string `json:"role"`
	// The permissions granted by the role
	Permissions Permissions `json:"permissions"`
}

// Permissions groups the permission sets of a role.
type Permissions struct {
	// Permissions on the key-value store
	KV RWPermission `json:"kv"`
}

// RWPermission lists readable and writable key prefixes.
type RWPermission struct {
	// The key prefixes the role may read
	Read []string `json:"read,omitempty"`
	// The key prefixes the role may write
	Write []string `json:"write,omitempty"`
}

// userList is the payload of the user list call
type userList struct {
	Users []User `json:"users"`
}

// roleList is the payload of the role list call
type roleList struct {
	Roles []Role `json:"roles"`
}

// --------------------------------------------------------------------------
// Auth System
// --------------------------------------------------------------------------

// Status reports whether the auth system is enabled.
func Status(c *client.Client) (*client.Response[AuthStatus], error) {
	return client.RequestFailover[AuthStatus](c, client.GetRequest("v2/auth/enable"))
}

// Enable turns the auth system on. Requires a root user to exist.
func Enable(c *client.Client) (*client.Response[struct{}], error) {
	return client.RequestFailover[struct{}](c, bareRequest("PUT", "v2/auth/enable"))
}

// Disable turns the auth system off.
func Disable(c *client.Client) (*client.Response[struct{}], error) {
	return client.RequestFailover[struct{}](c, bareRequest("DELETE", "v2/auth/enable"))
}

// --------------------------------------------------------------------------
// Users
// --------------------------------------------------------------------------

// CreateUser creates or updates a user.
func CreateUser(c *client.Client, user NewUser) (*client.Response[User], error) {
	return client.RequestFailover[User](c, jsonRequest("PUT", userPath(user.User), user))
}

// GetUser returns the user with the given name.
func GetUser(c *client.Client, name string) (*client.Response[User], error) {
	return client.RequestFailover[User](c, client.GetRequest(userPath(name)))
}

// ListUsers returns all users.
func ListUsers(c *client.Client) (*client.Response[[]User], error) {
	resp, err := client.RequestFailover[userList](c, client.GetRequest("v2/auth/users"))
	if err != nil {
		return nil, err
	}

	return &client.Response[[]User]{
		Data:        resp.Data.Users,
		ClusterInfo: resp.ClusterInfo,
	}, nil
}

// DeleteUser deletes the user with the given name.
func DeleteUser(c *client.Client, name string) (*client.Response[struct{}], error) {
	return client.RequestFailover[struct{}](c, bareRequest("DELETE", userPath(name)))
}

// --------------------------------------------------------------------------
// Roles
// --------------------------------------------------------------------------

// CreateRole creates or updates a role.
func CreateRole(c *client.Client, role Role) (*client.Response[Role], error) {
	return client.RequestFailover[Role](c, jsonRequest("PUT", rolePath(role.Role), role))
}

// GetRole returns the role with the given name.
func GetRole(c *client.Client, name string) (*client.Response[Role], error) {
	return client.RequestFailover[Role](c, client.GetRequest(rolePath(name)))
}

// ListRoles returns all roles.
func ListRoles(c *client.Client) (*client.Response[[]Role], error) {
	resp, err := client.RequestFailover[roleList](c, client.GetRequest("v2/auth/roles"))
	if err != nil {
		return nil, err
	}

	return &client.Response[[]Role]{
		Data:        resp.Data.Roles,
		ClusterInfo: resp.ClusterInfo,
	}, nil
}

// DeleteRole deletes the role with the given name.
func DeleteRole(c *client.Client, name string) (*client.Response[struct{}], error) {
	return client.RequestFailover[struct{}](c, bareRequest("DELETE", rolePath(name)))
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// userPath builds the resource path for a user, escaping the name
func userPath(name string) string {
	return "v2/auth/users/" + url.PathEscape(name)
}

// rolePath builds the resource path for a role, escaping the name
func rolePath(name string) string {
	return "v2/auth/roles/" + url.PathEscape(name)
}

// bareRequest returns a request builder for a body-less call
func bareRequest(method, path string) client.BuildRequestFunc {
	return func(endpoint url.URL) (client.HTTPRequest, error) {
		uri, err := client.BuildURI(endpoint, path, nil)
		if err != nil {
			return client.HTTPRequest{}, err
		}
		return client.HTTPRequest{Method: method, URI: uri}, nil
	}
}

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
