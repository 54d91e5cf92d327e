package stats

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ValentinKolb/etcdc/client"
)

const leaderStatsPayload = `{
	"leader": "924e2e83e93f2560",
	"followers": {
		"6e3bd23ae5f1eae0": {
			"counts": {"fail": 0, "success": 745},
			"latency": {"average": 0.017, "current": 0.0003, "maximum": 1.007, "minimum": 0, "standardDeviation": 0.12}
		}
	}
}`

// newStatsMember starts a fake member answering the stats endpoints with
// the given member name
func newStatsMember(t *testing.T, name string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/stats/leader":
			w.Write([]byte(leaderStatsPayload))
		case "/v2/stats/self":
			w.Write([]byte(`{"id":"eca0338f4ea3","name":"` + name + `","leaderInfo":{"leader":"8a69d5f6b7","startTime":"2014-10-24T13:15:51Z","uptime":"10m"},"recvAppendRequestCnt":5944,"sendAppendRequestCnt":0,"startTime":"2014-10-24T13:15:50Z","state":"StateFollower"}`))
		case "/v2/stats/store":
			w.Write([]byte(`{"getsSuccess":75,"getsFail":4,"setsSuccess":2,"setsFail":0,"deleteSuccess":0,"deleteFail":0,"updateSuccess":0,"updateFail":0,"createSuccess":2,"createFail":0,"compareAndSwapSuccess":0,"compareAndSwapFail":0,"compareAndDeleteSuccess":0,"compareAndDeleteFail":0,"expireCount":0,"watchers":0}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	return server
}

// TestLeaderFailsOver tests that leader statistics are served by the first
// reachable member
func TestLeaderFailsOver(t *testing.T) {
	// first endpoint is dead
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	live := newStatsMember(t, "infra1")

	c, err := client.New(client.ClientConfig{Endpoints: []string{deadURL, live.URL}, TimeoutSecond: 2})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	resp, err := Leader(c)
	if err != nil {
		t.Fatalf("Leader() error = %v", err)
	}

	if resp.Data.Leader != "924e2e83e93f2560" {
		t.Errorf("Leader = %q, want 924e2e83e93f2560", resp.Data.Leader)
	}
	follower, ok := resp.Data.Followers["6e3bd23ae5f1eae0"]
	if !ok {
		t.Fatal("missing follower entry")
	}
	if follower.Counts.Success != 745 {
		t.Errorf("follower success count = %d, want 745", follower.Counts.Success)
	}
	if follower.Latency.Average != 0.017 {
		t.Errorf("follower average latency = %f, want 0.017", follower.Latency.Average)
	}
}

// TestSelfFansOut tests that every member reports its own statistics
func TestSelfFansOut(t *testing.T) {
	memberA := newStatsMember(t, "infra1")
	memberB := newStatsMember(t, "infra2")

	c, err := client.New(client.ClientConfig{Endpoints: []string{memberA.URL, memberB.URL}})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	names := make(map[string]bool)
	var total int
	for result := range Self(c) {
		total++
		if result.Err != nil {
			t.Fatalf("Self() slot error = %v", result.Err)
		}
		names[result.Response.Data.Name] = true

		if result.Response.Data.State != "StateFollower" {
			t.Errorf("State = %q, want StateFollower", result.Response.Data.State)
		}
	}

	if total != 2 {
		t.Fatalf("yielded %d results, want 2", total)
	}
	if !names["infra1"] || !names["infra2"] {
		t.Errorf("names = %v, want both members", names)
	}
}

// TestStoreFanoutWithDeadMember tests that a dead member occupies its slot
// with a transport error while the others still answer
func TestStoreFanoutWithDeadMember(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	live := newStatsMember(t, "infra1")

	c, err := client.New(client.ClientConfig{Endpoints: []string{live.URL, deadURL}, TimeoutSecond: 2})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	var successes, failures int
	for result := range Store(c) {
		if result.Err != nil {
			if !client.IsTransport(result.Err) {
				t.Errorf("slot error = %v, want transport error", result.Err)
			}
			failures++
			continue
		}
		successes++

		if result.Response.Data.GetSuccess != 75 {
			t.Errorf("GetSuccess = %d, want 75", result.Response.Data.GetSuccess)
		}
	}

	if successes != 1 || failures != 1 {
		t.Errorf("successes/failures = %d/%d, want 1/1", successes, failures)
	}
}
