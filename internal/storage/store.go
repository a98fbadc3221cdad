package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/wavesim/internal/views"
	"github.com/san-kum/wavesim/internal/wave"
)

var ErrNotFound = errors.New("storage: recording not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Dir() string { return s.baseDir }

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RecordingMetadata describes a recording. Params holds the view's tunable
// values when recording started.
type RecordingMetadata struct {
	ID        string             `json:"id"`
	View      string             `json:"view"`
	Timestamp time.Time          `json:"timestamp"`
	FPS       int                `json:"fps"`
	Frames    int                `json:"frames"`
	Width     int                `json:"width"`
	Series    []string           `json:"series"`
	Params    map[string]float64 `json:"params"`
}

// Sample is one row of frames.csv.
type Sample struct {
	Frame     int     `json:"frame"`
	Elapsed   float64 `json:"elapsed"`
	Series    string  `json:"series"`
	Pixel     int     `json:"pixel"`
	T         float64 `json:"t"`
	Amplitude float64 `json:"amplitude"`
}

var header = []string{"frame", "elapsed", "series", "pixel", "t", "amplitude"}

// Capture flattens the current series of v into samples for frame.
func Capture(v views.View, frame int) []Sample {
	elapsed := v.Elapsed()
	var out []Sample
	for _, s := range v.Series() {
		for _, p := range s.Frame {
			out = append(out, Sample{
				Frame:     frame,
				Elapsed:   elapsed,
				Series:    s.Name,
				Pixel:     p.Pixel,
				T:         p.Time,
				Amplitude: p.Amplitude,
			})
		}
	}
	return out
}

// Metadata describes v as it stands, ready for Save.
func Metadata(v views.View, fps, frames, width int) RecordingMetadata {
	meta := RecordingMetadata{
		View:   v.Name(),
		FPS:    fps,
		Frames: frames,
		Width:  width,
		Params: make(map[string]float64),
	}
	for _, s := range v.Series() {
		meta.Series = append(meta.Series, s.Name)
	}
	for _, p := range v.Params() {
		meta.Params[p.Name] = p.Value
	}
	return meta
}

// Save writes metadata.json and frames.csv under a new recording id.
func (s *Store) Save(meta RecordingMetadata, samples []Sample) (string, error) {
	now := time.Now()
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("%s_%d", meta.View, now.UnixNano())
	}
	if meta.Timestamp.IsZero() {
		meta.Timestamp = now
	}
	dir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("storage: %w", err)
	}

	if err := writeJSON(filepath.Join(dir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeCSV(filepath.Join(dir, "frames.csv"), samples); err != nil {
		return "", err
	}
	return meta.ID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(path string, samples []Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, smp := range samples {
		row := []string{
			strconv.Itoa(smp.Frame),
			strconv.FormatFloat(smp.Elapsed, 'f', 6, 64),
			smp.Series,
			strconv.Itoa(smp.Pixel),
			strconv.FormatFloat(smp.T, 'f', 6, 64),
			strconv.FormatFloat(smp.Amplitude, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable recording, newest first.
func (s *Store) List() ([]RecordingMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RecordingMetadata{}, nil
		}
		return nil, err
	}

	recs := make([]RecordingMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		recs = append(recs, *meta)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Timestamp.After(recs[j].Timestamp) })
	return recs, nil
}

func (s *Store) Load(id string) (*RecordingMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	var meta RecordingMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: parse metadata %s: %w", id, err)
	}
	return &meta, nil
}

// LoadSamples reads frames.csv back. Malformed rows are skipped.
func (s *Store) LoadSamples(id string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, "frames.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("storage: read frames %s: %w", id, err)
	}
	if len(records) < 2 {
		return []Sample{}, nil
	}

	samples := make([]Sample, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != len(header) {
			continue
		}
		frame, err1 := strconv.Atoi(rec[0])
		elapsed, err2 := strconv.ParseFloat(rec[1], 64)
		pixel, err3 := strconv.Atoi(rec[3])
		t, err4 := strconv.ParseFloat(rec[4], 64)
		amp, err5 := strconv.ParseFloat(rec[5], 64)
		if err := errors.Join(err1, err2, err3, err4, err5); err != nil {
			continue
		}
		samples = append(samples, Sample{Frame: frame, Elapsed: elapsed, Series: rec[2], Pixel: pixel, T: t, Amplitude: amp})
	}
	return samples, nil
}

// SeriesFrame picks one series of one frame out of samples.
func SeriesFrame(samples []Sample, frame int, series string) wave.SampleFrame {
	var out wave.SampleFrame
	for _, smp := range samples {
		if smp.Frame == frame && smp.Series == series {
			out = append(out, wave.Point{Pixel: smp.Pixel, Time: smp.T, Amplitude: smp.Amplitude})
		}
	}
	return out
}

// FrameCount returns one past the highest frame index in samples.
func FrameCount(samples []Sample) int {
	n := 0
	for _, smp := range samples {
		if smp.Frame+1 > n {
			n = smp.Frame + 1
		}
	}
	return n
}
