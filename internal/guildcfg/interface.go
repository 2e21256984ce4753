package guildcfg

// Store defines guild-scoped configuration access. Every value is
// partitioned by guild; scalars are stored raw and documents as JSON.
// Writes are last-writer-wins, there is no compare-and-swap.
type Store interface {
	GetString(guildID, key string) (string, error)
	SetString(guildID, key, value string) error
	// GetDocument unmarshals the stored document into out and reports
	// whether a document existed for the key.
	GetDocument(guildID, key string, out any) (bool, error)
	SetDocument(guildID, key string, doc any) error
}
