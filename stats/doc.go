// Package stats implements the statistics API of etcd (/v2/stats).
//
// Leader statistics can be answered by any reachable member and use the
// failover dispatcher. Self and store statistics describe one member's
// own state, so those calls fan out to every configured endpoint
// concurrently and yield one result per member in completion order.
//
// Usage Example:
//
//	c, _ := client.New(client.ClientConfig{Endpoints: endpoints})
//
//	for result := range stats.Self(c) {
//		if result.Err != nil {
//			fmt.Println("member unreachable:", result.Err)
//			continue
//		}
//		fmt.Println(result.Response.Data.Name, result.Response.Data.State)
//	}
package stats
