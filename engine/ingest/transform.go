package ingest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tunexa/audiodb/engine/semantic"
	"github.com/tunexa/audiodb/pkg/fn"
)

type tierText struct {
	tier, text string
}

// SystemRecords flattens a brand event into indexable records, one per
// generation and trim tier. Models are visited in sorted order and
// generations keep their authored order; tiers with no description are
// dropped.
func SystemRecords(ev BrandImported) []semantic.SystemRecord {
	models := make([]string, 0, len(ev.Models))
	for name := range ev.Models {
		models = append(models, name)
	}
	sort.Strings(models)

	var out []semantic.SystemRecord
	for _, model := range models {
		for _, e := range ev.Models[model] {
			tiers := fn.Filter([]tierText{
				{tier: "base", text: e.BaseSystem},
				{tier: "premium", text: e.PremiumSystem},
			}, func(t tierText) bool { return strings.TrimSpace(t.text) != "" })

			for _, t := range tiers {
				out = append(out, semantic.SystemRecord{
					Brand:      ev.Brand,
					Model:      model,
					Generation: e.Generation,
					Years:      e.Years,
					Tier:       t.tier,
					Text:       systemText(ev.Brand, model, e.Generation, e.Years, t),
				})
			}
		}
	}
	return out
}

// systemText composes the sentence handed to the embedder. Vehicle context
// up front lets similarity search tell identical system names apart
// across models.
func systemText(brand, model, generation, years string, t tierText) string {
	return fmt.Sprintf("%s %s %s (%s) %s audio: %s",
		brand, model, generation, years, t.tier, strings.TrimSpace(t.text))
}
