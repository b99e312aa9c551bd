package todo

// Codec reads and writes the persisted todo collection.
//
// Load returns the stored collection, or an empty collection when
// nothing has been stored yet. Save overwrites the stored collection
// entirely; there is no merge.
type Codec interface {
	Load() ([]Todo, error)
	Save(todos []Todo) error
}
