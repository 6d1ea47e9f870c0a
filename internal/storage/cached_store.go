package storage

import "lifedash/internal/providers"

// CachedStore answers reads from the cache and keeps it in step with writes.
// Only present keys are cached; a miss always falls through to the inner store.
type CachedStore struct {
	inner KeyValueStore
	cache providers.CacheProviderInterface
}

func NewCachedStore(inner KeyValueStore, cache providers.CacheProviderInterface) *CachedStore {
	return &CachedStore{inner: inner, cache: cache}
}

func (c *CachedStore) Get(key string) (string, bool, error) {
	if val, ok := c.cache.Get(key); ok {
		return string(val), true, nil
	}
	val, ok, err := c.inner.Get(key)
	if err != nil || !ok {
		return val, ok, err
	}
	c.cache.Set(key, []byte(val))
	return val, true, nil
}

func (c *CachedStore) Set(key, value string) error {
	c.cache.Del(key)
	if err := c.inner.Set(key, value); err != nil {
		return err
	}
	c.cache.Set(key, []byte(value))
	return nil
}

func (c *CachedStore) Remove(key string) error {
	err := c.inner.Remove(key)
	c.cache.Del(key)
	return err
}

func (c *CachedStore) Keys() ([]string, error) {
	return c.inner.Keys()
}

func (c *CachedStore) Close() error {
	c.cache.Clear()
	return c.inner.Close()
}

// Purge drops every cached entry so the next reads see the inner store.
func (c *CachedStore) Purge() {
	c.cache.Clear()
}
