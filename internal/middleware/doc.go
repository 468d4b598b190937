// Package middleware provides cross-cutting request middleware: JWT
// authentication and role-based access checks.
package middleware
