// Package match provides identifier tokenization and edit-distance helpers
// used to name generated files and to suggest corrections for misspelled
// markers.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the closest known word for a typo
//   - TokenizeIdent / SnakeCase: split Go identifiers on case changes
package match
