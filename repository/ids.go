package repository

import "time"

// nextID allocates an identifier for a new document. Ids follow the
// historical epoch-millisecond scheme, bumped past the collection's current
// maximum so creations within the same millisecond cannot collide. Callers
// must hold the collection's write lock.
func nextID(maxExisting int64) int64 {
	id := time.Now().UnixMilli()
	if id <= maxExisting {
		id = maxExisting + 1
	}
	return id
}
