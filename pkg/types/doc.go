// Package types defines the entity types, filters, and standard error
// values shared by the Stockpile storage layer and CLI.
package types
