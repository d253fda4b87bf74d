package listing

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ContentHash identifies a listing by title and link only, so two copies of
// the same posting with diverging descriptions still collapse to one.
func ContentHash(item Item) string {
	content := fmt.Sprintf("%s|%s", item.Title, item.Link)
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// Dedup removes exact (title, link) duplicates in a single pass, preserving
// first-seen order. Near-duplicate titles are intentionally not merged.
func Dedup(items []Item) []Item {
	seen := make(map[string]struct{}, len(items))
	out := make([]Item, 0, len(items))
	for _, item := range items {
		key := ContentHash(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
