// Package screen turns a catalog screen definition into live components.
//
// A Screen owns the components of one topic page, routes taps and explicit
// state changes to them, keeps a State map fed only by the components' change
// callbacks and republishes those changes as Events. Taps are serialised with
// a mutex so a screen can back an HTTP session; components themselves stay
// single-owner and synchronous.
//
// The semantics tree of a screen nests one container per section and per
// example so audits and traversal can be scoped to a single example.
package screen
