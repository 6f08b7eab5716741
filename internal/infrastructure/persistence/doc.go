// Package persistence provides message repository implementations.
// Relational stores (sqlite, postgres) go through GORM; the embedded store uses bbolt.
package persistence
