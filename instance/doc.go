// SPDX-License-Identifier: MIT

// Package instance loads transportation problems from disk.
//
// Two encodings are understood:
//
//   - Text, one keyword per line:
//
//     COSTS 19 30 50 10
//     COSTS 70 30 40 60
//     SUPPLY 7 9
//     DEMAND 5 8 7 14
//
//     Each COSTS line appends one supplier row. SUPPLY and DEMAND lines may be
//     repeated; their values are concatenated. Lines with fewer than two
//     fields and unknown keywords are skipped, and '#' starts a comment.
//
//   - YAML (and therefore JSON) with the keys costs, supply and demand.
//
// Load picks the decoder from the file extension. Parsing never checks
// balance or shape; call (*Instance).Validate for that.
package instance
