// Package kv implements the primary key-value API of etcd (the v2 key
// space under /v2/keys). Every function is a thin layer that builds a URI
// and a form-encoded request body and hands it to the client's failover
// dispatcher - a key-value operation can be served by any reachable
// member.
//
// Key Components:
//
//   - Get/Set/Delete: The basic key operations. Get supports recursive
//     listing, sorting and quorum reads via GetOptions.
//
//   - Create/Update: Conditional variants of Set that require the key to
//     be absent respectively present.
//
//   - CreateDir/DeleteDir: Directory operations.
//
// Usage Example:
//
//	c, _ := client.New(client.ClientConfig{Endpoints: []string{"http://localhost:2379"}})
//
//	if _, err := kv.Set(c, "/foo", "bar"); err != nil {
//		panic(err)
//	}
//
//	resp, err := kv.Get(c, "/foo", kv.GetOptions{})
//	if err != nil {
//		panic(err)
//	}
//	fmt.Println(*resp.Data.Node.Value) // "bar"
//
// Watch, compare-and-swap and TTL handling are intentionally not part of
// this package.
package kv
