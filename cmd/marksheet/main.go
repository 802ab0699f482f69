// Command marksheet writes the seamark reference sheet as SVG.
//
// Usage:
//
//	marksheet -output sheet.svg -size 50
//	marksheet -region 2,0,8,10 -spacing 80
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/seamark"
	"github.com/gogpu/seamark/index"
	"github.com/gogpu/seamark/recording"
	"github.com/gogpu/seamark/recording/backends/svg"
)

func main() {
	var (
		output  = flag.String("output", "marksheet.svg", "output file")
		size    = flag.Float64("size", 50, "nominal marker size in points")
		spacing = flag.Float64("spacing", svg.DefaultUnit, "SVG units per chart unit")
		region  = flag.String("region", "", "only draw marks inside minx,miny,maxx,maxy")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		seamark.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	b := seamark.NewBuilder(seamark.WithMarkerSize(*size))
	symbols := b.Marks(seamark.Sheet())

	rec := recording.NewRecorder()
	if *region != "" {
		bounds, err := parseRegion(*region)
		if err != nil {
			log.Fatalf("Invalid -region: %v", err)
		}
		symbols = cull(symbols, bounds)
	} else {
		drawHeadings(rec)
	}

	for _, sym := range symbols {
		if err := sym.Err(); err != nil {
			log.Printf("incomplete symbol at %v: %v", sym.Position, err)
		}
		if err := sym.Render(rec); err != nil {
			log.Fatalf("Failed to render: %v", err)
		}
	}

	backend, err := recording.NewBackend("svg")
	if err != nil {
		log.Fatalf("Failed to create backend: %v", err)
	}
	if sb, ok := backend.(*svg.Backend); ok {
		sb.Unit = *spacing
	}
	if err := rec.FinishRecording().Playback(backend); err != nil {
		log.Fatalf("Failed to play back: %v", err)
	}

	if err := save(*output, backend.(recording.WriterBackend)); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Sheet saved to %s (%d symbols, %d commands)\n", *output, len(symbols), rec.Len())
}

// save writes w to a new file at path. A failed Close is reported, since it
// can lose buffered output.
func save(path string, w io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := w.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// cull keeps the symbols positioned inside bounds.
func cull(symbols []seamark.Symbol, bounds index.Bounds) []seamark.Symbol {
	idx := index.New(index.DefaultTolerance)
	for _, sym := range symbols {
		idx.Insert(sym)
	}
	return idx.Query(bounds)
}

// parseRegion parses "minx,miny,maxx,maxy".
func parseRegion(s string) (index.Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return index.Bounds{}, fmt.Errorf("want 4 comma-separated numbers, got %d", len(parts))
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return index.Bounds{}, err
		}
		v[i] = f
	}
	b := index.Bounds{MinX: v[0], MinY: v[1], MaxX: v[2], MaxY: v[3]}
	return b, b.Validate()
}

// drawHeadings labels the rows and columns of the sheet.
func drawHeadings(r seamark.Renderer) {
	shapes := seamark.SheetShapes()
	for j, s := range shapes {
		_ = r.DrawText(seamark.NewLabel(seamark.Pt(1, float64(j*2)), s.String()))
	}
	for i, t := range seamark.Topmarks() {
		_ = r.DrawText(seamark.NewLabel(seamark.Pt(float64(i+2), float64(len(shapes)*2)), t.String()))
	}
	_ = r.DrawText(seamark.NewLabel(seamark.Pt(1, 15), "Land marks"))
	_ = r.DrawText(seamark.NewLabel(seamark.Pt(1, 19), "Danger marks"))
	_ = r.DrawText(seamark.NewLabel(seamark.Pt(1, 23), "Light"))
}
