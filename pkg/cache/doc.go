// Package cache provides a generic, thread-safe keyed store used to hold
// in-flight and parsed localization resources.
//
// Entries are created on first use with GetOrPut and stay until RemoveFunc
// drops them; there is no size or time based eviction.
//
//	s := cache.New[string, *Resource]()
//	s.SetEvictCallback(func(key string, _ *Resource) {
//		log.Printf("evicted %s", key)
//	})
//
//	res, _ := s.GetOrPut("locales/app.{locale}.properties"+"fr"+"app", load)
//
//	// drop every entry of one resource, whatever the language
//	s.RemoveFunc(func(key string, _ *Resource) bool {
//		return strings.HasPrefix(key, "locales/app.{locale}.properties")
//	})
//
// All operations run under a single mutex. The create function of GetOrPut and
// the evict callback run while the lock is held and must not call back into
// the store.
package cache
