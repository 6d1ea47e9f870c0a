package storage

// KeyValueStore is the string-keyed, string-valued store the dashboard keeps its state in.
// Get reports ok=false for a missing key; a missing key is not an error.
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
	Keys() ([]string, error)
	Close() error
}

// usage counts bytes the same way for every driver that enforces a quota.
func usage(data map[string]string) int {
	total := 0
	for k, v := range data {
		total += len(k) + len(v)
	}
	return total
}

// fitsQuota reports whether replacing key with value keeps data within quota.
// A quota of zero or less disables the check.
func fitsQuota(data map[string]string, quota int, key, value string) bool {
	if quota <= 0 {
		return true
	}
	next := usage(data) + len(key) + len(value)
	if old, ok := data[key]; ok {
		next -= len(key) + len(old)
	}
	return next <= quota
}
