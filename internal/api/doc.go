// Package api contains the HTTP handlers of the prompt generator: one
// submission endpoint per prompt kind (JSON and plain-text download
// variants) plus the form-options endpoint clients use to build the
// submission form. Handlers translate service outcomes into HTTP
// statuses and never expose raw upstream errors to clients.
package api
