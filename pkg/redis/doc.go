// Package redis connects to Redis and stores raw resource text there so that
// several processes can share language packs fetched from a remote tier.
//
// Connect parses Config.ConnectionURL and pings the server until it answers
// or the retry budget runs out. Storage implements fetch.Store: Get and Set
// with an expiration, every key namespaced by Config.KeyPrefix.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	store := redis.NewStorage(client, cfg)
//	defer store.Close()
//
//	packs := fetch.NewCached(s3Fetcher, store, fetch.WithTTL(time.Hour))
//
// Config fields are read from L20N_REDIS_* variables through pkg/config.
package redis
