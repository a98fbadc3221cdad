package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/wavesim/internal/storage"
	"github.com/san-kum/wavesim/internal/views"
	"github.com/san-kum/wavesim/internal/wave"
)

type SeriesData struct {
	Name   string       `json:"name"`
	Color  string       `json:"color,omitempty"`
	Points []wave.Point `json:"points"`
}

// FrameData is one sampled frame of a view.
type FrameData struct {
	View    string        `json:"view"`
	Elapsed float64       `json:"elapsed"`
	Params  []views.Param `json:"params"`
	Series  []SeriesData  `json:"series"`
}

func Frame(v views.View) FrameData {
	d := FrameData{View: v.Name(), Elapsed: v.Elapsed(), Params: v.Params()}
	for _, s := range v.Series() {
		d.Series = append(d.Series, SeriesData{Name: s.Name, Color: s.Color, Points: s.Frame})
	}
	return d
}

// RecordingData bundles a stored recording for export.
type RecordingData struct {
	Metadata storage.RecordingMetadata `json:"metadata"`
	Samples  []storage.Sample          `json:"samples"`
}

func WriteJSON(out io.Writer, data any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func ExportJSON(path string, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()
	return WriteJSON(f, data)
}
