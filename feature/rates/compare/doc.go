// Package compare implements the per-vendor rate comparison algorithms.
//
// Each vendor family is a separate pure function selected through the
// closed Kind enum; Reconcile dispatches, runs the function, and sorts
// the output for deterministic artifacts. The functions share an input
// shape (normalized sheet rows grouped by semantic name, plus the master
// routing rows already filtered to the vendor) but deliberately do not
// share a parameterized implementation: the behavioral deltas between
// families (prefix vs. substring matching, dedup vs. no-dedup,
// single-match vs. max-of-candidates) are independent axes that are
// easier to verify as independent functions.
//
// # Guarantees
//
//   - Pure: no I/O, no logging, no retained state. Inputs are validated
//     by the caller before dispatch.
//   - Deterministic: output is sorted by (dial code, destination, origin
//     label) with a stable sort.
//   - Join misses never fail: every no-candidate condition falls back to
//     a defined default (base rate, empty match, skipped row).
//   - Highest-rate tie-breaks are strict; the first candidate wins exact
//     ties.
//
// # Dial-code fields
//
// Multi-code fields are expanded to one output record per code. SplitCodes
// treats ';' and '-' as plain separators (no numeric range expansion, a
// preserved legacy behavior); SplitList splits on commas.
package compare
