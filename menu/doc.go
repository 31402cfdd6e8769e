// Package menu formats, summarises and searches thali (combo meal) records.
//
// Records are read, never modified. Each entry point checks only the fields
// it uses and answers malformed input with an empty result instead of an
// error:
//
//	Describe      ""    unless the record is fully well-formed
//	ComputeStats  nil   for a non-sequence or empty sequence
//	Search        []    for a non-sequence or non-string query
//	Receipt       ""    for a non-string customer or empty sequence
//
// All functions are pure and safe for concurrent use.
package menu
