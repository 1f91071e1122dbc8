// Package catalog holds the authored vehicle audio-system data and the
// types it is expressed in. The data is maintained as literal segments,
// one per brand group, and merged into a single catalog by Build.
package catalog

import "sort"

// Entry describes the factory audio fit of one model generation. All four
// fields are free text as authored; the JSON names are the wire contract
// of the import API and of the fallback export file.
type Entry struct {
	Generation    string `json:"generacia"`
	Years         string `json:"roky"`
	BaseSystem    string `json:"zakladny_system"`
	PremiumSystem string `json:"premiovy_system"`
}

// Catalog maps brand name -> model name -> generations in authored order.
// A catalog returned by Build shares the authored backing data and must
// be treated as read-only.
type Catalog map[string]map[string][]Entry

// Stats summarizes catalog size.
type Stats struct {
	Brands      int
	Models      int
	Generations int
}

// Stats counts brands, models and generation entries.
func (c Catalog) Stats() Stats {
	s := Stats{Brands: len(c)}
	for _, models := range c {
		s.Models += len(models)
		for _, gens := range models {
			s.Generations += len(gens)
		}
	}
	return s
}

// Brands returns the brand names in sorted order.
func (c Catalog) Brands() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ModelNames returns brand -> sorted model names, the vocabulary shape
// consumed by the query matcher.
func (c Catalog) ModelNames() map[string][]string {
	out := make(map[string][]string, len(c))
	for brand, models := range c {
		names := make([]string, 0, len(models))
		for name := range models {
			names = append(names, name)
		}
		sort.Strings(names)
		out[brand] = names
	}
	return out
}
