// Package api wires HTTP routes to their handlers.
//
// Handlers translate HTTP requests into service calls and service results
// back into JSON responses; no business logic lives here.
package api
