// Package client implements the core HTTP client for the etcd v2 API.
// It owns the endpoint-resilient request dispatcher that all API packages
// (kv, members, auth, stats) build on: every API call is reduced to a
// request-building function which the dispatcher runs against one or all
// of the configured cluster endpoints.
//
// The package focuses on:
//   - Sequential failover across the configured endpoint list
//   - Concurrent fan-out of independent per-endpoint queries
//   - Uniform response envelopes (payload + cluster metadata from headers)
//   - Uniform error classification (transport, api, decode, invalid uri)
//
// Key Components:
//
//   - New: Factory function that creates a Client from a ClientConfig.
//     The endpoint list is parsed and validated once and is immutable
//     afterwards, so a Client can be shared by any number of goroutines.
//
//   - RequestFailover: Runs a request against the endpoints strictly in
//     order until one of them answers. Only transport-level failures move
//     on to the next endpoint; API and decode errors are surfaced
//     immediately since retrying them elsewhere would not change the
//     outcome.
//
//   - RequestFanout: Runs one request per endpoint concurrently and
//     returns the results as an unordered channel with exactly one slot
//     per endpoint. Used where every member's individual answer matters,
//     e.g. the per-member statistics calls.
//
//   - IHTTPTransport: Pluggable transport layer. The default
//     implementation wraps net/http and owns connection pooling, TLS and
//     HTTP basic auth.
//
// Usage Example:
//
//	config := client.ClientConfig{
//		Endpoints:     []string{"http://etcd.example.com:2379"},
//		TimeoutSecond: 5,
//	}
//
//	c, err := client.New(config)
//	if err != nil {
//		panic(err)
//	}
//
//	// Issue a raw GET against the cluster with failover.
//	resp, err := client.RequestFailover[map[string]string](c, client.GetRequest("version"))
//	if err != nil {
//		panic(err)
//	}
//	fmt.Println(resp.Data, resp.ClusterInfo)
//
// Thread Safety:
//
//	A Client is immutable after construction and safe for concurrent use
//	without additional synchronization.
package client
