package importer

import (
	"fmt"
	"os"

	"github.com/tunexa/audiodb/engine/catalog"
)

// DefaultExportPath is where the fallback export lands, relative to the
// working directory, when no path is given.
const DefaultExportPath = "auto_audio_db.json"

// WriteFile exports the catalog as indented UTF-8 JSON for manual import
// through the web UI. Non-ASCII text is written literally, matching what
// Send puts on the wire.
func WriteFile(cat catalog.Catalog, path string) error {
	if path == "" {
		path = DefaultExportPath
	}
	data, err := marshalCatalog(cat, true)
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
