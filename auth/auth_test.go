package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ValentinKolb/etcdc/client"
)

// newAuthClient creates a client against the given handler
func newAuthClient(t *testing.T, handler http.HandlerFunc) *client.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := client.New(client.ClientConfig{Endpoints: []string{server.URL}})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return c
}

// TestStatus tests decoding of the auth status
func TestStatus(t *testing.T) {
	c := newAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" || r.URL.Path != "/v2/auth/enable" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"enabled":true}`))
	})

	resp, err := Status(c)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if !resp.Data.Enabled {
		t.Error("Enabled = false, want true")
	}
}

// TestEnableDisable tests the wire shape of the toggle calls
func TestEnableDisable(t *testing.T) {
	var methods []string
	c := newAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/auth/enable" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		methods = append(methods, r.Method)
		w.WriteHeader(http.StatusOK)
	})

	if _, err := Enable(c); err != nil {
		t.Fatalf("Enable() error = %v", err)
	}
	if _, err := Disable(c); err != nil {
		t.Fatalf("Disable() error = %v", err)
	}

	if len(methods) != 2 || methods[0] != "PUT" || methods[1] != "DELETE" {
		t.Errorf("methods = %v, want [PUT DELETE]", methods)
	}
}

// TestCreateUser tests the wire shape of the user creation call
func TestCreateUser(t *testing.T) {
	var gotPath string
	var gotUser NewUser

	c := newAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotUser); err != nil {
			t.Errorf("request body is not valid json: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"user":"alice","roles":["guest"]}`))
	})

	resp, err := CreateUser(c, NewUser{User: "alice", Password: "secret", Roles: []string{"guest"}})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	if gotPath != "/v2/auth/users/alice" {
		t.Errorf("path = %s, want /v2/auth/users/alice", gotPath)
	}
	if gotUser.User != "alice" || gotUser.Password != "secret" {
		t.Errorf("request payload = %+v", gotUser)
	}
	if resp.Data.User != "alice" {
		t.Errorf("created user = %q, want alice", resp.Data.User)
	}
}

// TestUserNameEscaping tests that user names with reserved characters are
// escaped before the request line is built
func TestUserNameEscaping(t *testing.T) {
	var gotPath string
	c := newAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"user":"alice smith"}`))
	})

	if _, err := GetUser(c, "alice smith"); err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}

	if gotPath != "/v2/auth/users/alice%20smith" {
		t.Errorf("escaped path = %q, want %q", gotPath, "/v2/auth/users/alice%20smith")
	}
}

// TestListUsers tests decoding of the user list
func TestListUsers(t *testing.T) {
	c := newAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"users":[{"user":"root","roles":["root"]},{"user":"alice","roles":["guest"]}]}`))
	})

	resp, err := ListUsers(c)
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}

	if len(resp.Data) != 2 {
		t.Fatalf("got %d users, want 2", len(resp.Data))
	}
	if resp.Data[0].User != "root" || resp.Data[1].User != "alice" {
		t.Errorf("unexpected users: %+v", resp.Data)
	}
}

// TestGetRole tests decoding of a role with permissions
func TestGetRole(t *testing.T) {
	c := newAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/auth/roles/guest" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"role":"guest","permissions":{"kv":{"read":["/public/*"],"write":[]}}}`))
	})

	resp, err := GetRole(c, "guest")
	if err != nil {
		t.Fatalf("GetRole() error = %v", err)
	}

	if resp.Data.Role != "guest" {
		t.Errorf("Role = %q, want guest", resp.Data.Role)
	}
	if len(resp.Data.Permissions.KV.Read) != 1 || resp.Data.Permissions.KV.Read[0] != "/public/*" {
		t.Errorf("read permissions = %v", resp.Data.Permissions.KV.Read)
	}
}
