package catalog

// File is the on-disk citation catalog format. Clinical review teams edit
// this file; the service loads it read-only at startup.
type File struct {
	Version     string  `json:"version"`
	LastUpdated string  `json:"lastUpdated"`
	Citations   []Entry `json:"citations"`
}

type Entry struct {
	SourceID    string   `json:"sourceId"`
	ChunkID     string   `json:"chunkId"`
	SupportText string   `json:"supportText"`
	Tags        []string `json:"tags"`
}
