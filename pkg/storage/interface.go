// Package storage owns the only persistence the catalog performs: an empty
// marker artifact per created table. Marker contents are never written or read.
package storage

// Storage is the interface for marker persistence
type Storage interface {
	// CreateTable creates (or truncates) the marker for tableName
	CreateTable(tableName string) error

	// HasTable reports whether a marker exists for tableName
	HasTable(tableName string) (bool, error)
}

// DefaultMarkerSuffix is appended to the table name to form the marker file name
const DefaultMarkerSuffix = ".txt"
