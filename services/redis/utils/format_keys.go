package utils

/**
 * This file contains utility functions to format the keys for Redis
 * (key, value) pairs, so the key layout lives in a single place.
 */

import "fmt"

// FormatSnapshotKey is the key holding the whole application document
func FormatSnapshotKey(name string) string {
	return fmt.Sprintf("gamehub:%s", name)
}
