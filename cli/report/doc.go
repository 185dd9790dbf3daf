// Package report renders the results of checking input against a grammar, as
// styled text for terminals or as JSON or YAML documents.
package report
