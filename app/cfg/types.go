package cfg

type Cfg struct {
	// Catalog and rules configuration
	SourcesDir string
	RulesFile  string

	// Cache configuration
	CacheBackend string
	CachePath    string
	RedisAddr    string
	CacheTTL     int

	// Fetch configuration
	BaselineTimeout   int
	EnhancedTimeout   int
	FetchRetries      int
	ItemCap           int
	BaselineGroupSize int
	EnhancedGroupSize int
	WarmInterval      int

	// Application configuration
	Port    string
	BaseUrl string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
