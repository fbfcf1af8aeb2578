// Package types defines the Country record, the Store interface, aggregate
// statistics, configuration and the standard error kinds shared by the atlas
// catalog, its storage backends and the CLI.
package types
