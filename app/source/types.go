package source

import "github.com/frontend-hunter/opp-comb/app/listing"

// Format selects which adapter applies to a source.
type Format string

const (
	FormatTopicList      Format = "html-topic-list"
	FormatRSS            Format = "generic-rss"
	FormatJSONBoard      Format = "json-board-generic"
	FormatRemoteBoard    Format = "remote-board-json"
	FormatAggregatorNews Format = "aggregator-news-json"
	FormatCommunity      Format = "community-json"
	FormatGenericJSON    Format = "generic-json"
	FormatGenericHTML    Format = "generic-html"
	FormatSocial         Format = "social"
)

var validFormats = map[Format]bool{
	FormatTopicList:      true,
	FormatRSS:            true,
	FormatJSONBoard:      true,
	FormatRemoteBoard:    true,
	FormatAggregatorNews: true,
	FormatCommunity:      true,
	FormatGenericJSON:    true,
	FormatGenericHTML:    true,
	FormatSocial:         true,
}

var validRegions = map[string]bool{
	"Global": true,
	"CN":     true,
	"US":     true,
	"EU":     true,
	"UK":     true,
	"APAC":   true,
}

// Source describes one remote endpoint. Everything a source can yield
// inherits its declared Type; the Name doubles as the correlation key for
// caching, scoring rules and catalog dedup.
type Source struct {
	Name     string       `yaml:"name"`
	URL      string       `yaml:"url"`
	Type     listing.Type `yaml:"type"`
	Format   Format       `yaml:"format"`
	Region   string       `yaml:"region"`
	Category string       `yaml:"category,omitempty"`
}
