// Package model defines the narrow view of a host type model that member
// resolution needs: the declared fields of a type and its declared methods
// with their parameter counts.
//
// Hosts (the Go package analyzer, the type-description file loader, an
// editor integration) implement TypeModel. Failures to enumerate members are
// reported as ModelUnavailable so callers can tell them apart from a type
// that genuinely declares nothing.
package model
