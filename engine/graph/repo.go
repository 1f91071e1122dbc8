package graph

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/tunexa/audiodb/pkg/repo"
)

// newBrandRepo creates a Neo4j-backed repository for Brand nodes.
func newBrandRepo(driver neo4j.DriverWithContext) *repo.Neo4jRepo[Brand, string] {
	return repo.NewNeo4jRepo[Brand, string](
		driver,
		"Brand",
		brandToMap,
		brandFromRecord,
	)
}

func brandToMap(b Brand) map[string]any {
	return map[string]any{
		"id":   b.ID,
		"name": b.Name,
	}
}

func brandFromRecord(rec *neo4j.Record) (Brand, error) {
	node, _, err := neo4j.GetRecordValue[dbtype.Node](rec, "n")
	if err != nil {
		return Brand{}, err
	}
	return Brand{
		ID:   strProp(node.Props, "id"),
		Name: strProp(node.Props, "name"),
	}, nil
}
