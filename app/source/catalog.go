package source

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/frontend-hunter/opp-comb/app/listing"
)

type catalogFile struct {
	Sources []Source `yaml:"sources"`
}

// Catalog holds the validated source descriptors loaded from YAML files.
// Catalog data is configuration, not behavior: adapters only ever see one
// Source at a time.
type Catalog struct {
	dir     string
	sources []Source
	mu      sync.RWMutex
}

func NewCatalog(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// Run loads every *.yml file under the catalog directory. Sources sharing a
// name across files are collapsed to the first occurrence.
func (c *Catalog) Run() error {
	if _, err := os.Stat(c.dir); os.IsNotExist(err) {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(c.dir, "*.yml"))
	if err != nil {
		return fmt.Errorf("failed to find catalog files: %w", err)
	}

	seen := make(map[string]bool)
	var sources []Source

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		var parsed catalogFile
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return fmt.Errorf("failed to parse %s: %w", file, err)
		}

		for _, src := range parsed.Sources {
			if err := validate(src); err != nil {
				return fmt.Errorf("invalid source in %s: %w", file, err)
			}
			if seen[src.Name] {
				slog.Debug("Duplicate source name skipped", "source", src.Name, "file", file)
				continue
			}
			seen[src.Name] = true
			sources = append(sources, src)
		}

		slog.Debug("Catalog file loaded", "file", filepath.Base(file), "sources", len(parsed.Sources))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.sources = sources

	return nil
}

// All returns a copy of the catalog.
func (c *Catalog) All() []Source {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Source, len(c.sources))
	copy(out, c.sources)
	return out
}

func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sources)
}

// Select filters the catalog by listing type and region; empty arguments
// match everything.
func (c *Catalog) Select(itemType listing.Type, region string) []Source {
	var out []Source
	for _, src := range c.All() {
		if itemType != "" && src.Type != itemType {
			continue
		}
		if region != "" && src.Region != region {
			continue
		}
		out = append(out, src)
	}
	return out
}

// SplitByPath partitions sources between the baseline and enhanced fetch
// paths: CN-region and local-community boards respond fine to plain
// requests, international platforms go through the browser-like path.
func SplitByPath(sources []Source) (baseline, enhanced []Source) {
	for _, src := range sources {
		if src.Region == "CN" || strings.Contains(src.Name, "V2EX") || strings.Contains(src.Name, "电鸭") {
			baseline = append(baseline, src)
		} else {
			enhanced = append(enhanced, src)
		}
	}
	return baseline, enhanced
}

func validate(src Source) error {
	if src.Name == "" {
		return fmt.Errorf("source name is required")
	}
	if src.URL == "" {
		return fmt.Errorf("source %s: url is required", src.Name)
	}
	if src.Type != listing.TypeJob && src.Type != listing.TypeIdea {
		return fmt.Errorf("source %s: invalid type %q", src.Name, src.Type)
	}
	if !validFormats[src.Format] {
		return fmt.Errorf("source %s: invalid format %q", src.Name, src.Format)
	}
	if !validRegions[src.Region] {
		return fmt.Errorf("source %s: invalid region %q", src.Name, src.Region)
	}
	return nil
}
