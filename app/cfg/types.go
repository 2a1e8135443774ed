package cfg

type Cfg struct {
	// Application configuration
	Port       string
	SourcesDir string
	ExportDir  string

	// Fetch behavior
	Timeout    int
	MaxRetries int
	RetryDelay int
	Backoff    string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
