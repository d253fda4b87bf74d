package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/frontend-hunter/opp-comb/app/cache"
	"github.com/frontend-hunter/opp-comb/app/listing"
	"github.com/frontend-hunter/opp-comb/app/source"
)

// panicAdapter panics for marked sources, succeeds for the rest.
type panicAdapter struct {
	panicOn string
}

func (a *panicAdapter) Fetch(_ context.Context, src source.Source) ([]listing.Item, error) {
	if src.Name == a.panicOn {
		panic("adapter bug")
	}
	return []listing.Item{jobItem(src.Name+" job", "https://x.example.com/"+src.Name)}, nil
}

func namedSources(names ...string) []source.Source {
	sources := make([]source.Source, 0, len(names))
	for _, name := range names {
		sources = append(sources, source.Source{
			Name: name,
			URL:  "https://x.example.com/" + name,
			Type: listing.TypeJob,
		})
	}
	return sources
}

func TestOrchestratorIsolatesFailures(t *testing.T) {
	adapter := &stubAdapter{
		items: map[string][]listing.Item{
			"good-1": {jobItem("Job 1", "https://x.example.com/1")},
			"good-2": {jobItem("Job 2", "https://x.example.com/2")},
		},
		errs: map[string]error{
			"bad": fmt.Errorf("upstream down"),
		},
	}
	fetcher := NewFetcher(adapter, cache.NewMemory(), time.Minute, "")
	orch := NewOrchestrator(fetcher, 2)

	items := orch.Run(context.Background(), namedSources("good-1", "bad", "good-2"))
	if len(items) != 2 {
		t.Fatalf("Expected failing source to contribute zero items, siblings intact; got %d items", len(items))
	}
}

func TestOrchestratorRecoversAdapterPanic(t *testing.T) {
	adapter := &panicAdapter{panicOn: "explodes"}
	fetcher := NewFetcher(adapter, cache.NewMemory(), time.Minute, "")
	orch := NewOrchestrator(fetcher, 5)

	items := orch.Run(context.Background(), namedSources("steady", "explodes", "also-steady"))
	if len(items) != 2 {
		t.Fatalf("Expected panic contained to its source, got %d items", len(items))
	}
}

func TestOrchestratorEmptyInput(t *testing.T) {
	fetcher := NewFetcher(&stubAdapter{}, cache.NewMemory(), time.Minute, "")
	orch := NewOrchestrator(fetcher, 5)

	if items := orch.Run(context.Background(), nil); len(items) != 0 {
		t.Errorf("Expected no items for empty source list, got %d", len(items))
	}
}

func TestOrchestratorRunsAllGroups(t *testing.T) {
	adapter := &stubAdapter{items: map[string][]listing.Item{}}
	names := make([]string, 12)
	for i := range names {
		names[i] = fmt.Sprintf("src-%d", i)
		adapter.items[names[i]] = []listing.Item{jobItem(names[i], "https://x.example.com/"+names[i])}
	}
	fetcher := NewFetcher(adapter, cache.NewMemory(), time.Minute, "")
	orch := NewOrchestrator(fetcher, 5)

	items := orch.Run(context.Background(), namedSources(names...))
	if len(items) != 12 {
		t.Fatalf("Expected all 12 sources fetched across 3 groups, got %d items", len(items))
	}
	if adapter.calls.Load() != 12 {
		t.Errorf("Expected 12 adapter calls, got %d", adapter.calls.Load())
	}
}

// End to end: one healthy board, one that hangs past the client timeout,
// one that returns garbage. The healthy board's five listings come through
// untouched.
func TestOrchestratorEndToEnd(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"jobs": [
			{"title": "Senior React Engineer", "url": "https://g.example.com/1", "salary": "$150k"},
			{"title": "Staff Frontend Engineer", "url": "https://g.example.com/2", "salary": "$150k"},
			{"title": "Vue Tech Lead", "url": "https://g.example.com/3", "salary": "$150k"},
			{"title": "TypeScript Platform Engineer", "url": "https://g.example.com/4", "salary": "$150k"},
			{"title": "Web Performance Engineer", "url": "https://g.example.com/5", "salary": "$150k"}
		]}`)
	}))
	defer good.Close()

	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer slow.Close()

	garbage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{{{not json`)
	}))
	defer garbage.Close()

	client := NewBaselineClient(300*time.Millisecond, "test-agent")
	set := NewSet(client, 50, nil)
	fetcher := NewFetcher(set, cache.NewMemory(), time.Minute, "")
	orch := NewOrchestrator(fetcher, 10)

	sources := []source.Source{
		{Name: "Good Board", URL: good.URL, Type: listing.TypeJob, Format: source.FormatJSONBoard, Region: "Global"},
		{Name: "Slow Board", URL: slow.URL, Type: listing.TypeJob, Format: source.FormatJSONBoard, Region: "Global"},
		{Name: "Garbage Board", URL: garbage.URL, Type: listing.TypeJob, Format: source.FormatJSONBoard, Region: "Global"},
	}

	items := orch.Run(context.Background(), sources)
	if len(items) != 5 {
		t.Fatalf("Expected exactly the healthy board's 5 listings, got %d", len(items))
	}
	for _, item := range items {
		if item.SourceName != "Good Board" {
			t.Errorf("Unexpected source %q in results", item.SourceName)
		}
		if item.SalaryText != "$150k" {
			t.Errorf("Expected salary text preserved, got %q", item.SalaryText)
		}
	}
}

func TestServiceSplitsPaths(t *testing.T) {
	adapter := &stubAdapter{items: map[string][]listing.Item{
		"V2EX 酷工作": {jobItem("前端工程师", "https://v2ex.example.com/1")},
		"RemoteOK":  {jobItem("React Developer", "https://remoteok.example.com/1")},
	}}
	baseline := NewOrchestrator(NewFetcher(adapter, cache.NewMemory(), time.Minute, ""), 10)
	enhanced := NewOrchestrator(NewFetcher(adapter, cache.NewMemory(), time.Minute, ""), 5)
	svc := NewService(baseline, enhanced)

	sources := []source.Source{
		{Name: "V2EX 酷工作", URL: "https://v2ex.example.com", Type: listing.TypeJob, Region: "CN"},
		{Name: "RemoteOK", URL: "https://remoteok.example.com", Type: listing.TypeJob, Region: "Global"},
	}

	items := svc.FetchAll(context.Background(), sources)
	if len(items) != 2 {
		t.Fatalf("Expected both paths to contribute, got %d items", len(items))
	}
}
