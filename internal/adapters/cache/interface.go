package cache

type hitResult[T any] struct {
	data    T
	valid   bool
	claimed bool
}

// Cache holds computed values by key
//
// An entry is claimed by the first caller that misses and stays invalid until
// that caller sets it, so concurrent callers wait instead of recomputing.
type Cache[T any] interface {
	getOrClaim(key string) hitResult[T]
	set(key string, data T)
	delete(key string)
	wait()
}
