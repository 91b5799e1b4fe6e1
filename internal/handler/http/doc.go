// Package http implements the HTTP transport of the board vault: the two
// stateless crypto endpoints, the version endpoint, and the middleware
// chain (trace IDs, request logging, gzip, permissive CORS).
//
// The package never inspects cryptographic detail. Service errors are
// translated to status codes via the errors mapper, and every failure body
// carries a deliberately terse external message; causes stay in the server
// log.
package http
