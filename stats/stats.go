package stats

import (
	"github.com/ValentinKolb/etcdc/client"
)

// --------------------------------------------------------------------------
// Types
// --------------------------------------------------------------------------

// LeaderStats describes the cluster leader and its view of the followers.
type LeaderStats struct {
	// The unique identifier of the leader member
	Leader string `json:"leader"`
	// Statistics for each peer, keyed by the peer's unique identifier
	Followers map[string]FollowerStats `json:"followers"`
}

// FollowerStats describes the health of a single follower as seen by the
// leader.
type FollowerStats struct {
	// Counts of raft RPC request successes and failures to this follower
	Counts CountStats `json:"counts"`
	// Latency statistics for this follower
	Latency LatencyStats `json:"latency"`
}

// CountStats holds the number of successful and failed raft RPC requests
// to a member.
type CountStats struct {
	Fail    uint64 `json:"fail"`
	Success uint64 `json:"success"`
}

// LatencyStats holds the observed network latency to a member, in seconds.
type LatencyStats struct {
	Average           float64 `json:"average"`
	Current           float64 `json:"current"`
	Maximum           float64 `json:"maximum"`
	Minimum           float64 `json:"minimum"`
	StandardDeviation float64 `json:"standardDeviation"`
}

// SelfStats describes a single member's own state.
type SelfStats struct {
	// The unique raft ID of the member
	ID string `json:"id"`
	// The member's name
	Name string `json:"name"`
	// A small amount of information about the current leader
	LeaderInfo LeaderInfo `json:"leaderInfo"`
	// The number of received append requests
	ReceivedAppendRequestCount uint64 `json:"recvAppendRequestCnt"`
	// The bandwidth rate of received requests (absent on the leader)
	ReceivedBandwidthRate *float64 `json:"recvBandwidthRate,omitempty"`
	// The package rate of received requests (absent on the leader)
	ReceivedPackageRate *float64 `json:"recvPkgRate,omitempty"`
	// The number of sent append requests
	SentAppendRequestCount uint64 `json:"sendAppendRequestCnt"`
	// The bandwidth rate of sent requests (absent on followers)
	SentBandwidthRate *float64 `json:"sendBandwidthRate,omitempty"`
	// The package rate of sent requests (absent on followers)
	SentPackageRate *float64 `json:"sendPkgRate,omitempty"`
	// The time the member started
	StartTime string `json:"startTime"`
	// The raft state of the member ("StateLeader" or "StateFollower")
	State string `json:"state"`
}

// LeaderInfo identifies the current leader from a member's point of view.
type LeaderInfo struct {
	// The unique raft ID of the leader
	ID string `json:"leader"`
	// The time the leader started
	StartTime string `json:"startTime"`
	// The amount of time the leader has been up
	Uptime string `json:"uptime"`
}

// StoreStats counts the operations handled by a member's store.
type StoreStats struct {
	CompareAndDeleteFail    uint64 `json:"compareAndDeleteFail"`
	CompareAndDeleteSuccess uint64 `json:"compareAndDeleteSuccess"`
	CompareAndSwapFail      uint64 `json:"compareAndSwapFail"`
	CompareAndSwapSuccess   uint64 `json:"compareAndSwapSuccess"`
	CreateFail              uint64 `json:"createFail"`
	CreateSuccess           uint64 `json:"createSuccess"`
	DeleteFail              uint64 `json:"deleteFail"`
	DeleteSuccess           uint64 `json:"deleteSuccess"`
	ExpireCount             uint64 `json:"expireCount"`
	GetFail                 uint64 `json:"getsFail"`
	GetSuccess              uint64 `json:"getsSuccess"`
	SetFail                 uint64 `json:"setsFail"`
	SetSuccess              uint64 `json:"setsSuccess"`
	UpdateFail              uint64 `json:"updateFail"`
	UpdateSuccess           uint64 `json:"updateSuccess"`
	Watchers                uint64 `json:"watchers"`
}

// --------------------------------------------------------------------------
// Operations
// --------------------------------------------------------------------------

// Leader returns statistics about the leader member of the cluster. Any
// reachable member can answer this call.
func Leader(c *client.Client) (*client.Response[LeaderStats], error) {
	return client.RequestFailover[LeaderStats](c, client.GetRequest("v2/stats/leader"))
}

// Self returns statistics about each cluster member the client was
// initialized with, one result per endpoint in completion order.
func Self(c *client.Client) <-chan client.Result[SelfStats] {
	return client.RequestFanout[SelfStats](c, client.GetRequest("v2/stats/self"))
}

// Store returns statistics about the operations handled by each cluster
// member the client was initialized with, one result per endpoint in
// completion order.
func Store(c *client.Client) <-chan client.Result[StoreStats] {
	return client.RequestFanout[StoreStats](c, client.GetRequest("v2/stats/store"))
}
