// Package gen renders the SJR map as a generated JavaScript module and
// writes it to disk. Output is deterministic: keys are emitted in
// lexicographic order, so the same map always produces the same bytes.
package gen
