package interfaces

import "github.com/oarkflow/listingfilter/filesystem"

// FS is the set of storage roots served by the application.
type FS interface {
	Paths() []string
	Names() []string
	Storages() []filesystem.Storage
	Storage(index int) (filesystem.Storage, bool)
}
