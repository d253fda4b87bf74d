package listing

import (
	"time"
)

type Type string

const (
	TypeJob  Type = "job"
	TypeIdea Type = "idea"
)

// Item is the canonical listing shape. Adapters are the only producers;
// once emitted an Item is never mutated, so cached copies stay valid.
type Item struct {
	Title      string    `json:"title"`
	Link       string    `json:"link"`
	Summary    string    `json:"summary,omitempty"`
	Meta       string    `json:"meta,omitempty"`
	Author     string    `json:"author,omitempty"`
	SourceName string    `json:"source_name"`
	Type       Type      `json:"type"`
	Region     string    `json:"region"`
	Timestamp  time.Time `json:"timestamp"`
	SalaryText string    `json:"salary_text,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
}
