// Package members implements the cluster membership API of etcd
// (/v2/members). All operations are thin layers over the client's
// failover dispatcher.
//
// Key Components:
//
//   - List: Returns all members of the cluster.
//   - Add: Registers a new member by its peer URLs.
//   - Delete: Removes a member by its ID.
//   - Update: Replaces the peer URLs of an existing member.
package members
