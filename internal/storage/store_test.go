package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/wavesim/internal/clock"
	"github.com/san-kum/wavesim/internal/views"
)

func newView(t *testing.T, name string) (views.View, *clock.Manual) {
	t.Helper()
	src := clock.NewManual(time.Unix(0, 0))
	v, err := views.New(name, nil, src.Now)
	if err != nil {
		t.Fatalf("new view: %v", err)
	}
	return v, src
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	v, src := newView(t, "superposition")
	var samples []Sample
	for i := 0; i < 3; i++ {
		v.Update()
		samples = append(samples, Capture(v, i)...)
		src.Advance(100 * time.Millisecond)
	}

	id, err := st.Save(Metadata(v, 10, 3, 800), samples)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty recording id")
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.View != "superposition" {
		t.Errorf("expected view superposition, got %q", meta.View)
	}
	if len(meta.Series) != 3 || meta.Series[2] != "combined" {
		t.Errorf("unexpected series %v", meta.Series)
	}
	if meta.Params["amplitude_left"] != 110 {
		t.Errorf("expected amplitude_left 110, got %f", meta.Params["amplitude_left"])
	}

	loaded, err := st.LoadSamples(id)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if len(loaded) != len(samples) {
		t.Fatalf("expected %d samples, got %d", len(samples), len(loaded))
	}
	if FrameCount(loaded) != 3 {
		t.Errorf("expected 3 frames, got %d", FrameCount(loaded))
	}

	want := samples[len(samples)-1]
	got := loaded[len(loaded)-1]
	if got.Frame != want.Frame || got.Series != want.Series || got.Pixel != want.Pixel {
		t.Errorf("row mismatch: got %+v, want %+v", got, want)
	}
	if diff := got.Amplitude - want.Amplitude; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("amplitude drifted: %f vs %f", got.Amplitude, want.Amplitude)
	}

	combined := SeriesFrame(loaded, 2, "combined")
	if len(combined) != 800 {
		t.Errorf("expected 800 combined points, got %d", len(combined))
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	v, _ := newView(t, "pulse")
	v.Update()

	for i := 0; i < 2; i++ {
		meta := Metadata(v, 60, 1, 800)
		meta.ID = fmt.Sprintf("pulse_%d", i)
		meta.Timestamp = time.Unix(int64(1000+i), 0)
		if _, err := st.Save(meta, Capture(v, 0)); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	recs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 recordings, got %d", len(recs))
	}
	if !recs[0].Timestamp.After(recs[1].Timestamp) {
		t.Error("expected newest first")
	}
}

func TestStoreDirHoldsRecordings(t *testing.T) {
	base := t.TempDir()
	st := New(base)
	if st.Dir() != base {
		t.Fatalf("expected dir %s, got %s", base, st.Dir())
	}

	v, _ := newView(t, "pulse")
	v.Update()
	id, err := st.Save(Metadata(v, 10, 1, 800), Capture(v, 0))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	for _, name := range []string{"metadata.json", "frames.csv"} {
		if _, err := os.Stat(filepath.Join(st.Dir(), id, name)); err != nil {
			t.Errorf("expected %s under Dir: %v", name, err)
		}
	}
}

func TestListMissingDir(t *testing.T) {
	st := New(t.TempDir() + "/nope")
	recs, err := st.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected no recordings, got %d", len(recs))
	}
}

func TestLoadNotFound(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := st.LoadSamples("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
