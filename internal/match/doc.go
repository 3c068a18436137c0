// Package match provides edit-distance suggestions for identifiers that
// were requested but not found, e.g. a misspelled -type name.
package match
