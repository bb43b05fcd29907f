// Package contract has shared configuration and helpers for commands,
// output writers, and the HTTP server.
package contract
