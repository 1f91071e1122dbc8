package graph

import (
	"context"
	"fmt"
	"sort"

	"github.com/tunexa/audiodb/engine/catalog"
)

// ImportStats is the import response contract: processed counts plus
// per-entity failures. The errors list is omitted from JSON when empty.
type ImportStats struct {
	Brands  int      `json:"brands"`
	Models  int      `json:"models"`
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// generation upsert outcomes
const (
	outcomeCreated = iota
	outcomeUpdated
	outcomeSkipped
)

type tally struct {
	created int
	updated int
	skipped int
}

// ImportCatalog merges the catalog into the graph. Brands and models are
// visited in sorted order, generations in authored order. A failed brand
// or model is recorded in the stats and does not abort the rest of the
// import; each model's generations commit in one transaction.
func (g *GraphStore) ImportCatalog(ctx context.Context, cat catalog.Catalog) (ImportStats, error) {
	sess := g.opener.OpenSession(ctx)
	defer sess.Close(ctx)

	var stats ImportStats
	for _, brandName := range cat.Brands() {
		stats.Brands++
		b := NewBrand(brandName)
		if err := saveBrand(ctx, sess, b); err != nil {
			stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %v", brandName, err))
			continue
		}

		models := cat[brandName]
		names := make([]string, 0, len(models))
		for name := range models {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, modelName := range names {
			stats.Models++
			t, err := importModel(ctx, sess, b.ID, modelName, models[modelName])
			if err != nil {
				stats.Errors = append(stats.Errors, fmt.Sprintf("%s/%s: %v", brandName, modelName, err))
				continue
			}
			stats.Created += t.created
			stats.Updated += t.updated
			stats.Skipped += t.skipped
		}
	}
	return stats, nil
}

func saveBrand(ctx context.Context, sess CypherSession, b Brand) error {
	cypher := `MERGE (n:Brand {id: $id}) SET n.name = $name`
	_, err := sess.Run(ctx, cypher, map[string]any{
		"id":   b.ID,
		"name": b.Name,
	})
	return err
}

// importModel merges one model and its generations in a single write
// transaction. The tally only counts when the transaction commits.
func importModel(ctx context.Context, sess CypherSession, brandID, name string, gens []catalog.Entry) (tally, error) {
	var t tally
	mID := modelID(brandID, name)

	_, err := sess.ExecuteWrite(ctx, func(tx CypherRunner) (any, error) {
		cypher := `MERGE (m:Model {id: $id}) SET m.name = $name, m.brand_id = $brandID
		           WITH m
		           MATCH (b:Brand {id: $brandID})
		           MERGE (b)-[:HAS_MODEL]->(m)`
		if _, err := tx.Run(ctx, cypher, map[string]any{
			"id":      mID,
			"name":    name,
			"brandID": brandID,
		}); err != nil {
			return nil, err
		}

		for pos, e := range gens {
			outcome, err := upsertGeneration(ctx, tx, mID, pos, e)
			if err != nil {
				return nil, err
			}
			switch outcome {
			case outcomeCreated:
				t.created++
			case outcomeUpdated:
				t.updated++
			case outcomeSkipped:
				t.skipped++
			}
		}
		return nil, nil
	})
	if err != nil {
		return tally{}, err
	}
	return t, nil
}

// upsertGeneration distinguishes created (node absent), skipped (all
// authored fields already equal) and updated (anything differs).
func upsertGeneration(ctx context.Context, tx CypherRunner, modelID string, pos int, e catalog.Entry) (int, error) {
	genID := generationID(modelID, e.Generation)
	params := map[string]any{
		"id":      genID,
		"label":   e.Generation,
		"years":   e.Years,
		"base":    e.BaseSystem,
		"premium": e.PremiumSystem,
		"pos":     pos,
		"modelID": modelID,
	}

	result, err := tx.Run(ctx,
		`MATCH (g:Generation {id: $id})
		 RETURN g.label AS label, g.years AS years, g.base_system AS base, g.premium_system AS premium`,
		map[string]any{"id": genID})
	if err != nil {
		return 0, err
	}

	if !result.Next(ctx) {
		cypher := `MERGE (g:Generation {id: $id})
		           SET g.label = $label, g.years = $years, g.base_system = $base, g.premium_system = $premium, g.position = $pos, g.model_id = $modelID
		           WITH g
		           MATCH (m:Model {id: $modelID})
		           MERGE (m)-[:HAS_GENERATION]->(g)`
		if _, err := tx.Run(ctx, cypher, params); err != nil {
			return 0, err
		}
		return outcomeCreated, nil
	}

	rec := result.Record()
	if recString(rec, "label") == e.Generation &&
		recString(rec, "years") == e.Years &&
		recString(rec, "base") == e.BaseSystem &&
		recString(rec, "premium") == e.PremiumSystem {
		return outcomeSkipped, nil
	}

	cypher := `MATCH (g:Generation {id: $id})
	           SET g.label = $label, g.years = $years, g.base_system = $base, g.premium_system = $premium, g.position = $pos`
	if _, err := tx.Run(ctx, cypher, params); err != nil {
		return 0, err
	}
	return outcomeUpdated, nil
}
