package types

// Stats summarizes a non-empty catalog.
type Stats struct {
	MostPopulous    Country        `json:"most_populous"`
	LeastPopulous   Country        `json:"least_populous"`
	MeanPopulation  float64        `json:"mean_population"`
	MeanArea        float64        `json:"mean_area"`
	ContinentCounts map[string]int `json:"continent_counts"`
}
