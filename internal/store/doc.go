// Package store defines the persistence contract for the user directory.
// It abstracts the storage mechanism from the application's core logic so
// services depend only on the operations they need.
package store
