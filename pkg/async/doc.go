// Package async provides generic futures for running computations
// asynchronously and waiting for their completion.
//
// A Future is obtained by calling Async, which starts the supplied function
// in its own goroutine. Futures are
// safe to share: the resource cache stores one Future per resource and every
// context that needs the resource awaits the same instance, so a fetch is
// issued at most once.
//
//	f := async.Async(ctx, "locales/app.fr.properties", fetch)
//	res, err := f.AwaitContext(ctx)
//
// WaitAll settles a batch of futures and reports every error, not only the
// first one.
package async
