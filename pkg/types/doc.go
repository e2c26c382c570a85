// Package types defines the Store and Table interfaces, the marketplace
// entity types, and the standard errors shared by every backend and by the
// market CLI.
package types
