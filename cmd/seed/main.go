// Command seed loads the authored catalog straight into Neo4j, bypassing
// the import API. Meant for bringing up a fresh database or CI fixtures.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/tunexa/audiodb/engine/catalog"
	"github.com/tunexa/audiodb/engine/graph"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	neo4jURL := envOr("NEO4J_URL", "neo4j://localhost:7687")
	neo4jUser := envOr("NEO4J_USER", "neo4j")
	neo4jPass := envOr("NEO4J_PASS", "password")

	cat, err := catalog.Build()
	if err != nil {
		log.Fatalf("loading catalog: %v", err)
	}
	stats := cat.Stats()
	log.Printf("Loaded catalog: %d brands, %d models, %d generations", stats.Brands, stats.Models, stats.Generations)

	driver, err := neo4j.NewDriverWithContext(neo4jURL, neo4j.BasicAuth(neo4jUser, neo4jPass, ""))
	if err != nil {
		log.Fatalf("neo4j connect: %v", err)
	}
	defer driver.Close(ctx)
	if err := driver.VerifyConnectivity(ctx); err != nil {
		log.Fatalf("neo4j verify: %v", err)
	}

	gs := graph.New(driver)
	res, err := gs.ImportCatalog(ctx, cat)
	if err != nil {
		log.Fatalf("import: %v", err)
	}

	log.Printf("Done! Brands: %d, Models: %d, Created: %d, Updated: %d, Skipped: %d",
		res.Brands, res.Models, res.Created, res.Updated, res.Skipped)
	for _, e := range res.Errors {
		log.Printf("   error: %s", e)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
