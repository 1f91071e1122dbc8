// Command importer sends the authored catalog to the vehicle-speakers
// import API in one request. When the API cannot take it, the catalog is
// exported to a JSON file instead, with instructions for importing it by
// hand.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/tunexa/audiodb/engine/catalog"
	"github.com/tunexa/audiodb/engine/importer"
)

const defaultEndpoint = "http://localhost:3000/api/vehicle-speakers/import"

func main() {
	endpoint := flag.String("endpoint", envOr("IMPORT_URL", defaultEndpoint), "import API endpoint")
	timeout := flag.Duration("timeout", importer.DefaultTimeout, "request timeout")
	out := flag.String("out", importer.DefaultExportPath, "fallback export path")
	flag.Parse()

	cat, err := catalog.Build()
	if err != nil {
		log.Fatalf("loading catalog: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	run(ctx, os.Stdout, cat, *endpoint, *timeout, *out)
}

// run performs the one send attempt and, on any failure, the file
// fallback. Everything after the catalog load is reported on w rather
// than aborting: a refused import still ends with a usable export.
func run(ctx context.Context, w io.Writer, cat catalog.Catalog, endpoint string, timeout time.Duration, outPath string) {
	stats := cat.Stats()
	fmt.Fprintf(w, "Sending %d brands (%d models, %d generations) to %s ...\n",
		stats.Brands, stats.Models, stats.Generations, endpoint)

	imp := importer.New(endpoint, timeout)
	rep, err := imp.Send(ctx, cat)
	if err == nil {
		fmt.Fprintln(w)
		fmt.Fprint(w, rep.Summary())
		return
	}

	var stErr *importer.StatusError
	switch {
	case errors.As(err, &stErr):
		fmt.Fprintf(w, "\nError: HTTP %d\n", stErr.Code)
		if stErr.Body != "" {
			fmt.Fprintln(w, stErr.Body)
		}
	case errors.Is(err, importer.ErrConnection):
		fmt.Fprintln(w, "\nError: cannot connect to the import API.")
		if base := origin(endpoint); base != "" {
			fmt.Fprintf(w, "   Is the API server running at %s?\n", base)
		} else {
			fmt.Fprintln(w, "   Is the API server running?")
		}
	default:
		fmt.Fprintf(w, "\nError: import failed: %v\n", err)
	}

	exportFallback(w, cat, endpoint, outPath)
}

// exportFallback writes the catalog to disk and prints the manual import
// steps for the web UI.
func exportFallback(w io.Writer, cat catalog.Catalog, endpoint, outPath string) {
	fmt.Fprintln(w, "\nFalling back to file export...")
	if err := importer.WriteFile(cat, outPath); err != nil {
		fmt.Fprintf(w, "Export failed: %v\n", err)
		return
	}
	if outPath == "" {
		outPath = importer.DefaultExportPath
	}
	fmt.Fprintf(w, "Exported to %s\n", outPath)

	fmt.Fprintln(w, "\nTo import manually:")
	if base := origin(endpoint); base != "" {
		fmt.Fprintf(w, "   1. Open %s/speakers in a browser\n", base)
	} else {
		fmt.Fprintln(w, "   1. Open the speakers page in the web UI")
	}
	fmt.Fprintln(w, `   2. Click "Import JSON"`)
	fmt.Fprintf(w, "   3. Choose %s\n", outPath)
	fmt.Fprintln(w, "   4. Confirm the import")
}

// origin reduces the endpoint to scheme://host for the operator hints.
func origin(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
