package client

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

// TestNewValidation tests the endpoint validation at construction time
func TestNewValidation(t *testing.T) {
	tests := []struct {
		name      string
		endpoints []string
		wantErr   bool
	}{
		{
			name:      "Single valid endpoint",
			endpoints: []string{"http://localhost:2379"},
			wantErr:   false,
		},
		{
			name:      "Multiple valid endpoints",
			endpoints: []string{"http://a:2379", "https://b:2379"},
			wantErr:   false,
		},
		{
			name:      "No endpoints",
			endpoints: nil,
			wantErr:   true,
		},
		{
			name:      "Relative endpoint",
			endpoints: []string{"localhost:2379/"},
			wantErr:   true,
		},
		{
			name:      "One invalid endpoint poisons the list",
			endpoints: []string{"http://a:2379", "not a url"},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(ClientConfig{Endpoints: tt.endpoints})
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr = %t", err, tt.wantErr)
			}
		})
	}
}

// TestEndpointsIsACopy tests that callers cannot mutate the client's
// endpoint list
func TestEndpointsIsACopy(t *testing.T) {
	c, err := New(ClientConfig{Endpoints: []string{"http://a:2379", "http://b:2379"}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	endpoints := c.Endpoints()
	endpoints[0] = url.URL{Host: "mutated"}

	if c.Endpoints()[0].Host != "a:2379" {
		t.Error("mutating the returned slice changed the client's endpoints")
	}
}

// TestBuildURI tests the URI construction helper
func TestBuildURI(t *testing.T) {
	endpoint, _ := url.Parse("http://localhost:2379")

	tests := []struct {
		name     string
		base     string
		path     string
		query    url.Values
		expected string
		wantErr  bool
	}{
		{
			name:     "Plain path",
			base:     "http://localhost:2379",
			path:     "v2/stats/leader",
			expected: "http://localhost:2379/v2/stats/leader",
		},
		{
			name:     "Base with trailing slash",
			base:     "http://localhost:2379/",
			path:     "v2/keys/foo",
			expected: "http://localhost:2379/v2/keys/foo",
		},
		{
			name:     "Path with leading slash",
			base:     "http://localhost:2379",
			path:     "/v2/keys/foo",
			expected: "http://localhost:2379/v2/keys/foo",
		},
		{
			name:     "With query parameters",
			base:     "http://localhost:2379",
			path:     "v2/keys/foo",
			query:    url.Values{"recursive": []string{"true"}},
			expected: "http://localhost:2379/v2/keys/foo?recursive=true",
		},
		{
			name:     "Pre-escaped path is preserved",
			base:     "http://localhost:2379",
			path:     "v2/keys/my%20key",
			expected: "http://localhost:2379/v2/keys/my%20key",
		},
		{
			name:    "Unescaped space",
			base:    "http://localhost:2379",
			path:    "v2/keys/bad key",
			wantErr: true,
		},
		{
			name:    "Control character",
			base:    "http://localhost:2379",
			path:    "v2/keys/bad\nkey",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := *endpoint
			if tt.base != "" {
				parsed, err := url.Parse(tt.base)
				if err != nil {
					t.Fatalf("bad test base url: %v", err)
				}
				base = *parsed
			}

			uri, err := BuildURI(base, tt.path, tt.query)
			if tt.wantErr {
				kind, ok := KindOf(err)
				if !ok || kind != KindInvalidURI {
					t.Fatalf("BuildURI() error = %v, want invalid uri error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildURI() error = %v", err)
			}
			if uri != tt.expected {
				t.Errorf("BuildURI() = %q, want %q", uri, tt.expected)
			}
		})
	}
}

// TestHealthAndVersions tests the cluster-wide fan-out calls against real
// HTTP servers
func TestHealthAndVersions(t *testing.T) {
	newMember := func(version string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case strings.HasPrefix(r.URL.Path, "/health"):
				w.Write([]byte(`{"health":"true"}`))
			case strings.HasPrefix(r.URL.Path, "/version"):
				w.Write([]byte(`{"etcdserver":"` + version + `","etcdcluster":"2.3.0"}`))
			default:
				http.NotFound(w, r)
			}
		}))
	}

	memberA := newMember("2.3.7")
	defer memberA.Close()
	memberB := newMember("2.3.8")
	defer memberB.Close()

	c, err := New(ClientConfig{Endpoints: []string{memberA.URL, memberB.URL}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Health fans out to both members
	var healthy int
	for result := range c.Health() {
		if result.Err != nil {
			t.Fatalf("Health() error = %v", result.Err)
		}
		if result.Response.Data.Health == "true" {
			healthy++
		}
	}
	if healthy != 2 {
		t.Errorf("healthy members = %d, want 2", healthy)
	}

	// Versions carries each member's own version
	versions := make(map[string]bool)
	for result := range c.Versions() {
		if result.Err != nil {
			t.Fatalf("Versions() error = %v", result.Err)
		}
		versions[result.Response.Data.EtcdServer] = true
	}
	if !versions["2.3.7"] || !versions["2.3.8"] {
		t.Errorf("versions = %v, want both members' versions", versions)
	}
}
