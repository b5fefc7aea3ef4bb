// Package theming resolves go-theme manifests into renderer configuration.
// The catalog ships one embedded theme with a light base and a dark variant;
// every resolved palette can be checked with pkg/contrast.
package theming
