package feed

// Article is a single news item normalized from a publisher feed. Every
// field is optional: elements absent from the feed stay zero values.
type Article struct {
	Title       string `json:"title,omitempty"`
	Link        string `json:"link,omitempty"`
	Description string `json:"description,omitempty"`
	// Published keeps the feed's date text as-is. Publishers disagree on
	// formats, so normalization is left to consumers.
	Published  string            `json:"published,omitempty"`
	GUID       string            `json:"guid,omitempty"`
	Author     string            `json:"author,omitempty"`
	Categories []string          `json:"categories,omitempty"`
	Source     string            `json:"source,omitempty"`
	Extra      map[string]string `json:"extra,omitempty"`
}
