package store

// Store persists named document collections as whole units. Callers always
// read the full collection, compute a new one, and write the full collection
// back; there is no partial-document primitive. Update serializes that
// read-modify-write span for a single collection so concurrent mutations
// cannot overwrite each other.
type Store interface {
	// Load reads the full collection into out. A collection that has never
	// been persisted loads as empty.
	Load(collection string, out any) error

	// Persist replaces the collection wholesale. Readers must never observe
	// a partially written collection.
	Persist(collection string, docs any) error

	// Update runs fn while holding the collection's write lock.
	Update(collection string, fn func() error) error

	// Exists reports whether the collection has ever been persisted.
	Exists(collection string) bool
}
