package redis

import "fmt"

const (
	// KeyCatalog holds the JSON snapshot of the last good catalog
	KeyCatalog = "showreel:catalog"
	// KeyPrefixPlays is the prefix for per-video play counters
	KeyPrefixPlays = "showreel:plays:"
	// KeyAllPlays is the key for the set of all counted video IDs
	KeyAllPlays = "showreel:plays:all"
)

// CatalogKey returns the Redis key of the catalog snapshot
func CatalogKey() string {
	return KeyCatalog
}

// PlaysKey returns the Redis key for a video play counter
func PlaysKey(id string) string {
	return KeyPrefixPlays + id
}

// AllPlaysKey returns the key for the set of all counted video IDs
func AllPlaysKey() string {
	return KeyAllPlays
}

// ExtractVideoID extracts the video ID from a play counter key
func ExtractVideoID(key string) (string, error) {
	if len(key) <= len(KeyPrefixPlays) || key[:len(KeyPrefixPlays)] != KeyPrefixPlays || key == KeyAllPlays {
		return "", fmt.Errorf("invalid plays key: %s", key)
	}
	return key[len(KeyPrefixPlays):], nil
}
