package members

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ValentinKolb/etcdc/client"
)

// TestList tests decoding of the member list
func TestList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/members" || r.Method != "GET" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"members":[
			{"id":"272e204152","name":"infra1","peerURLs":["http://infra1:2380"],"clientURLs":["http://infra1:2379"]},
			{"id":"2225373f43","name":"infra2","peerURLs":["http://infra2:2380"],"clientURLs":["http://infra2:2379"]}
		]}`))
	}))
	defer server.Close()

	c, err := client.New(client.ClientConfig{Endpoints: []string{server.URL}})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	resp, err := List(c)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(resp.Data) != 2 {
		t.Fatalf("got %d members, want 2", len(resp.Data))
	}
	if resp.Data[0].ID != "272e204152" || resp.Data[0].Name != "infra1" {
		t.Errorf("unexpected first member: %+v", resp.Data[0])
	}
	if len(resp.Data[1].PeerURLs) != 1 || resp.Data[1].PeerURLs[0] != "http://infra2:2380" {
		t.Errorf("unexpected peer urls: %v", resp.Data[1].PeerURLs)
	}
}

// TestAdd tests the wire shape of the add call
func TestAdd(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"3777296169","peerURLs":["http://10.0.0.10:2380"]}`))
	}))
	defer server.Close()

	c, err := client.New(client.ClientConfig{Endpoints: []string{server.URL}})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	resp, err := Add(c, []string{"http://10.0.0.10:2380"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if gotMethod != "POST" || gotPath != "/v2/members" {
		t.Errorf("request = %s %s, want POST /v2/members", gotMethod, gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}

	var payload peerURLs
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("request body is not valid json: %v", err)
	}
	if len(payload.PeerURLs) != 1 || payload.PeerURLs[0] != "http://10.0.0.10:2380" {
		t.Errorf("request peerURLs = %v", payload.PeerURLs)
	}

	if resp.Data.ID != "3777296169" {
		t.Errorf("new member id = %q, want 3777296169", resp.Data.ID)
	}
}

// TestDelete tests that an empty success response is accepted
func TestDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "DELETE" || r.URL.Path != "/v2/members/272e204152" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c, err := client.New(client.ClientConfig{Endpoints: []string{server.URL}})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	if _, err := Delete(c, "272e204152"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}
