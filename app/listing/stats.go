package listing

// Stats aggregates one classification cycle for the statistics endpoint.
type Stats struct {
	Total         int            `json:"total"`
	ByType        map[string]int `json:"by_type"`
	ByRegion      map[string]int `json:"by_region"`
	BySource      map[string]int `json:"by_source"`
	AverageSalary int            `json:"average_salary"`
	MaxSalary     int            `json:"max_salary"`
}

// CalculateStats tallies items by type, region and source and aggregates the
// salaries that extraction recognizes. Items without a recognizable salary
// do not pull the average down.
func CalculateStats(items []Item) Stats {
	stats := Stats{
		Total:    len(items),
		ByType:   make(map[string]int),
		ByRegion: make(map[string]int),
		BySource: make(map[string]int),
	}

	totalSalary := 0
	salaryCount := 0

	for _, item := range items {
		stats.ByType[string(item.Type)]++
		stats.ByRegion[item.Region]++
		stats.BySource[item.SourceName]++

		if salary := ExtractSalary(CombinedText(item)); salary > 0 {
			totalSalary += salary
			salaryCount++
			if salary > stats.MaxSalary {
				stats.MaxSalary = salary
			}
		}
	}

	if salaryCount > 0 {
		stats.AverageSalary = totalSalary / salaryCount
	}

	return stats
}
