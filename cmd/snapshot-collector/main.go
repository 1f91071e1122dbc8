// Command snapshot-collector fetches catalog stats from the API, computes
// deltas against the previous snapshot, and writes JSON files for the
// status dashboard. Meant to run from cron.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Snapshot mirrors the stats endpoint response, stamped locally.
type Snapshot struct {
	TakenAt       time.Time        `json:"taken_at"`
	Nodes         map[string]int64 `json:"nodes"`
	Relationships map[string]int64 `json:"relationships"`
	TopBrands     []BrandStat      `json:"top_brands"`
}

// BrandStat is one row of the stats endpoint's top_brands list.
type BrandStat struct {
	Name        string `json:"name"`
	Models      int64  `json:"models"`
	Generations int64  `json:"generations"`
}

// Delta represents catalog growth between two consecutive snapshots.
type Delta struct {
	Timestamp      time.Time `json:"timestamp"`
	NewBrands      int64     `json:"new_brands"`
	NewModels      int64     `json:"new_models"`
	NewGenerations int64     `json:"new_generations"`
	NewRelations   int64     `json:"new_relations"`
	NewBrandNames  []string  `json:"new_brand_names,omitempty"`
}

const maxHistory = 288

func main() {
	apiURL := flag.String("api", "http://localhost:3000", "API base URL")
	dataDir := flag.String("data-dir", "dashboard/data", "output directory")
	flag.Parse()

	delta, err := collect(*apiURL, *dataDir)
	if err != nil {
		log.Fatalf("collect: %v", err)
	}

	fmt.Printf("Snapshot collected (+%d brands, +%d models, +%d generations, +%d rels)\n",
		delta.NewBrands, delta.NewModels, delta.NewGenerations, delta.NewRelations)
}

func collect(apiURL, dataDir string) (Delta, error) {
	os.MkdirAll(dataDir, 0o755)

	latestPath := filepath.Join(dataDir, "stats-latest.json")
	historyPath := filepath.Join(dataDir, "stats-history.json")
	prevPath := filepath.Join(dataDir, ".stats-prev.json")

	resp, err := http.Get(apiURL + "/api/stats")
	if err != nil {
		return Delta{}, fmt.Errorf("fetch stats: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Delta{}, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Delta{}, fmt.Errorf("API returned %d: %s", resp.StatusCode, body)
	}

	var current Snapshot
	if err := json.Unmarshal(body, &current); err != nil {
		return Delta{}, fmt.Errorf("parse stats: %w", err)
	}
	current.TakenAt = time.Now().UTC()

	var prev Snapshot
	if data, err := os.ReadFile(prevPath); err == nil {
		json.Unmarshal(data, &prev)
	}

	delta := computeDelta(current, prev)

	// Re-marshal rather than writing the response bytes through, so the
	// latest file carries the local timestamp.
	latest, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return Delta{}, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(latestPath, latest, 0o644); err != nil {
		return Delta{}, fmt.Errorf("write latest: %w", err)
	}

	var history []Delta
	if data, err := os.ReadFile(historyPath); err == nil {
		json.Unmarshal(data, &history)
	}
	history = append(history, delta)
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	histData, _ := json.MarshalIndent(history, "", "  ")
	os.WriteFile(historyPath, histData, 0o644)

	os.WriteFile(prevPath, latest, 0o644)
	return delta, nil
}

func computeDelta(current, prev Snapshot) Delta {
	d := Delta{
		Timestamp:      current.TakenAt,
		NewBrands:      current.Nodes["Brand"] - prev.Nodes["Brand"],
		NewModels:      current.Nodes["Model"] - prev.Nodes["Model"],
		NewGenerations: current.Nodes["Generation"] - prev.Nodes["Generation"],
		NewRelations:   sumCounts(current.Relationships) - sumCounts(prev.Relationships),
	}

	prevBrands := make(map[string]bool)
	for _, b := range prev.TopBrands {
		prevBrands[b.Name] = true
	}
	for _, b := range current.TopBrands {
		if !prevBrands[b.Name] {
			d.NewBrandNames = append(d.NewBrandNames, b.Name)
		}
	}
	return d
}

func sumCounts(m map[string]int64) int64 {
	var n int64
	for _, v := range m {
		n += v
	}
	return n
}
