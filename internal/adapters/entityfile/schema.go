package entityfile

// CurrentVersion is the only entity file format version understood by the loader.
const CurrentVersion = "1"

// EntityFile represents the structure of an entity fixture file.
type EntityFile struct {
	Version  string      `yaml:"version"`
	Entities []EntityDTO `yaml:"entities"`
}

// EntityDTO represents a single entity definition in the file.
// An empty ID declares a new, unpersisted entity.
type EntityDTO struct {
	ID        string `yaml:"id"`
	CreatedOn string `yaml:"createdOn"`
}
