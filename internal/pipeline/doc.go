// Package pipeline streams barcode groups from TSV files through a pool of
// resolver workers and calls a visit callback in input order.
//
// The only contract to implement is ResolveFunc. resolve.Resolve is the
// default; tests swap in their own to exercise error paths.
package pipeline
