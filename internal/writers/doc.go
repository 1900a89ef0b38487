// Package writers turns resolved barcode groups into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (pretty blocks, TSV, JSON/JSONL).
//   • The core stays domain-only; Pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
