package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// ModelsOf returns the models of a brand, ordered by name. The brand may
// be given as a display name or an id.
func (g *GraphStore) ModelsOf(ctx context.Context, brand string) ([]Model, error) {
	sess := g.opener.OpenSession(ctx)
	defer sess.Close(ctx)

	cypher := `MATCH (b:Brand)-[:HAS_MODEL]->(m:Model)
	           WHERE b.id = $id OR b.name = $name
	           RETURN m ORDER BY m.name`
	result, err := sess.Run(ctx, cypher, map[string]any{
		"id":   sanitizeID(brand),
		"name": brand,
	})
	if err != nil {
		return nil, err
	}

	var models []Model
	for result.Next(ctx) {
		node, _, err := neo4j.GetRecordValue[dbtype.Node](result.Record(), "m")
		if err != nil {
			return nil, err
		}
		models = append(models, modelFromProps(node.Props))
	}
	return models, nil
}

// GenerationsOf returns a model's generations in authored order.
func (g *GraphStore) GenerationsOf(ctx context.Context, brand, model string) ([]Generation, error) {
	sess := g.opener.OpenSession(ctx)
	defer sess.Close(ctx)

	cypher := `MATCH (m:Model {id: $id})-[:HAS_GENERATION]->(gen:Generation)
	           RETURN gen ORDER BY gen.position`
	result, err := sess.Run(ctx, cypher, map[string]any{
		"id": modelID(sanitizeID(brand), model),
	})
	if err != nil {
		return nil, err
	}

	var gens []Generation
	for result.Next(ctx) {
		node, _, err := neo4j.GetRecordValue[dbtype.Node](result.Record(), "gen")
		if err != nil {
			return nil, err
		}
		gens = append(gens, generationFromProps(node.Props))
	}
	return gens, nil
}

// FindBySystem matches generations whose base or premium system mentions
// the term, case-insensitively.
func (g *GraphStore) FindBySystem(ctx context.Context, term string, limit int) ([]SystemHit, error) {
	sess := g.opener.OpenSession(ctx)
	defer sess.Close(ctx)

	if limit <= 0 {
		limit = 50
	}
	cypher := `MATCH (b:Brand)-[:HAS_MODEL]->(m:Model)-[:HAS_GENERATION]->(g:Generation)
	           WITH b, m, g, toLower(g.base_system) CONTAINS toLower($term) AS inBase
	           WHERE inBase OR toLower(g.premium_system) CONTAINS toLower($term)
	           RETURN b.name AS brand, m.name AS model, g.label AS generation, g.years AS years,
	                  CASE WHEN inBase THEN g.base_system ELSE g.premium_system END AS system,
	                  CASE WHEN inBase THEN 'base' ELSE 'premium' END AS tier
	           ORDER BY brand, model, g.position
	           LIMIT $limit`
	result, err := sess.Run(ctx, cypher, map[string]any{
		"term":  term,
		"limit": int64(limit),
	})
	if err != nil {
		return nil, err
	}

	var hits []SystemHit
	for result.Next(ctx) {
		rec := result.Record()
		hits = append(hits, SystemHit{
			Brand:      recString(rec, "brand"),
			Model:      recString(rec, "model"),
			Generation: recString(rec, "generation"),
			Years:      recString(rec, "years"),
			System:     recString(rec, "system"),
			Tier:       recString(rec, "tier"),
		})
	}
	return hits, nil
}

// NodeCounts returns node counts grouped by label.
func (g *GraphStore) NodeCounts(ctx context.Context) (map[string]int64, error) {
	sess := g.opener.OpenSession(ctx)
	defer sess.Close(ctx)

	cypher := `MATCH (n) RETURN labels(n)[0] AS type, count(*) AS count`
	result, err := sess.Run(ctx, cypher, nil)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64)
	for result.Next(ctx) {
		rec := result.Record()
		typ, _ := rec.Get("type")
		cnt, _ := rec.Get("count")
		if t, ok := typ.(string); ok {
			if c, ok := cnt.(int64); ok {
				counts[t] = c
			}
		}
	}
	return counts, nil
}

// RelationshipCounts returns relationship counts grouped by type.
func (g *GraphStore) RelationshipCounts(ctx context.Context) (map[string]int64, error) {
	sess := g.opener.OpenSession(ctx)
	defer sess.Close(ctx)

	cypher := `MATCH ()-[r]->() RETURN type(r) AS type, count(*) AS count`
	result, err := sess.Run(ctx, cypher, nil)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64)
	for result.Next(ctx) {
		rec := result.Record()
		typ, _ := rec.Get("type")
		cnt, _ := rec.Get("count")
		if t, ok := typ.(string); ok {
			if c, ok := cnt.(int64); ok {
				counts[t] = c
			}
		}
	}
	return counts, nil
}

// TopBrands returns brands ranked by generation count.
func (g *GraphStore) TopBrands(ctx context.Context, limit int) ([]BrandStats, error) {
	sess := g.opener.OpenSession(ctx)
	defer sess.Close(ctx)

	if limit <= 0 {
		limit = 10
	}
	cypher := `MATCH (b:Brand)
	           OPTIONAL MATCH (b)-[:HAS_MODEL]->(m:Model)
	           OPTIONAL MATCH (m)-[:HAS_GENERATION]->(g:Generation)
	           RETURN b.name AS name, count(DISTINCT m) AS models, count(DISTINCT g) AS generations
	           ORDER BY generations DESC, name
	           LIMIT $limit`
	result, err := sess.Run(ctx, cypher, map[string]any{"limit": int64(limit)})
	if err != nil {
		return nil, err
	}

	var stats []BrandStats
	for result.Next(ctx) {
		rec := result.Record()
		s := BrandStats{Name: recString(rec, "name")}
		if m, ok := recValue(rec, "models").(int64); ok {
			s.Models = m
		}
		if gn, ok := recValue(rec, "generations").(int64); ok {
			s.Generations = gn
		}
		stats = append(stats, s)
	}
	return stats, nil
}

func modelFromProps(props map[string]any) Model {
	return Model{
		ID:      strProp(props, "id"),
		Name:    strProp(props, "name"),
		BrandID: strProp(props, "brand_id"),
	}
}

func generationFromProps(props map[string]any) Generation {
	return Generation{
		ID:            strProp(props, "id"),
		Label:         strProp(props, "label"),
		Years:         strProp(props, "years"),
		BaseSystem:    strProp(props, "base_system"),
		PremiumSystem: strProp(props, "premium_system"),
		Position:      intProp(props, "position"),
		ModelID:       strProp(props, "model_id"),
	}
}

func recValue(rec *neo4j.Record, key string) any {
	v, _ := rec.Get(key)
	return v
}

// recString reads a scalar string column, empty when absent or not a
// string.
func recString(rec *neo4j.Record, key string) string {
	if s, ok := recValue(rec, key).(string); ok {
		return s
	}
	return ""
}
