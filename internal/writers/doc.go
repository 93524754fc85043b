// Package writers turns a result set into serialized output.
//
// Design:
//   • Writers own all presentation knowledge (table layout, JSON/JSONL).
//   • fdns stays schema-only; pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
