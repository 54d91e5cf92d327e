// Package auth implements the authentication and authorization API of
// etcd (/v2/auth). All operations are thin layers over the client's
// failover dispatcher.
//
// Key Components:
//
//   - Status/Enable/Disable: Query and toggle the auth system.
//   - CreateUser/GetUser/ListUsers/DeleteUser: User management.
//   - CreateRole/GetRole/ListRoles/DeleteRole: Role management.
//
// Note that once auth is enabled, the client configuration must carry the
// credentials of a user permitted to perform the requested operations.
package auth
