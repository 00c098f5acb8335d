// Package build folds CSV rows into the final ISSN to score map.
//
// Build pipeline:
//  1. Read rows in file order.
//  2. Parse the SJR score; rows without a usable score are skipped whole,
//     valid ISSNs included.
//  3. Parse the Issn field into zero or more normalized ISSNs.
//  4. Insert each ISSN, keeping the maximum score on conflict.
package build
