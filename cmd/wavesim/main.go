package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/san-kum/wavesim/internal/analysis"
	"github.com/san-kum/wavesim/internal/automation"
	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/export"
	"github.com/san-kum/wavesim/internal/gui"
	"github.com/san-kum/wavesim/internal/storage"
	"github.com/san-kum/wavesim/internal/views"
	"github.com/san-kum/wavesim/internal/viz"
	"github.com/san-kum/wavesim/internal/wave"
)

var (
	dataDir    string
	configFile string
	preset     string
	theme      string
	debug      bool
	width      int
	height     int
	frameRate  int
	// sample / export
	at           float64
	asCSV        bool
	stride       int
	outPath      string
	recordFrames int
	gifFrames    int
	caption      bool
	allViews     bool
	fromRun      string
	// plot / analyze
	plotFrame int
	series    string
	probe     int
	gifPath   string
	// sweep
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	sweepAt    float64

	logFile *os.File
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "wavesim",
		Short:             "wave pulse and oscillation animations",
		PersistentPreRunE: setupLogging,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				logFile.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, "")
			if err != nil {
				return err
			}
			return gui.Run(cfg, "")
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", "~/.wavesim", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal theme")
	pf.BoolVar(&debug, "debug", false, "write diagnostics to wavesim-debug.log")
	pf.IntVar(&width, "width", config.DefaultWidth, "surface width in pixels")
	pf.IntVar(&height, "height", config.DefaultHeight, "surface height in pixels")
	pf.IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")

	liveCmd := &cobra.Command{
		Use:   "live [view]",
		Short: "animate a view in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&gifPath, "gif", "", "where g recordings are written")

	guiCmd := &cobra.Command{
		Use:   "gui [view]",
		Short: "animate a view in a desktop window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			cfg, err := loadConfig(cmd, name)
			if err != nil {
				return err
			}
			return gui.Run(cfg, name)
		},
	}

	sampleCmd := &cobra.Command{
		Use:   "sample [view]",
		Short: "print one frame of a view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sampleView,
	}
	sampleCmd.Flags().Float64Var(&at, "at", 0, "elapsed time in seconds")
	sampleCmd.Flags().BoolVar(&asCSV, "csv", false, "print every sample as CSV")
	sampleCmd.Flags().IntVar(&stride, "stride", 40, "pixels between table rows")

	recordCmd := &cobra.Command{
		Use:   "record [view]",
		Short: "save a recording of a view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  recordView,
	}
	recordCmd.Flags().IntVar(&recordFrames, "frames", 240, "number of frames")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recordings",
		RunE:  listRecordings,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [recording_id]",
		Short: "plot one frame of a recording",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRecording,
	}
	plotCmd.Flags().IntVar(&plotFrame, "frame", -1, "frame index (default last)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [recording_id]",
		Short: "pulse statistics and spectrum of a recording",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRecording,
	}
	analyzeCmd.Flags().StringVar(&series, "series", "", "series to analyse (default first)")
	analyzeCmd.Flags().IntVar(&probe, "pixel", -1, "pixel whose amplitude history is transformed (default centre)")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export a view as svg, png, gif or json",
	}
	ef := exportCmd.PersistentFlags()
	ef.StringVarP(&outPath, "out", "o", "", "output file (default <view>.<ext>)")
	ef.Float64Var(&at, "at", 0, "elapsed time in seconds")

	exportSVGCmd := &cobra.Command{
		Use:   "svg [view]",
		Short: "one frame as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportFrame("svg"),
	}
	exportPNGCmd := &cobra.Command{
		Use:   "png [view]",
		Short: "one frame as a PNG line chart",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportFrame("png"),
	}
	exportGIFCmd := &cobra.Command{
		Use:   "gif [view]",
		Short: "an animated GIF",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportGIF,
	}
	exportGIFCmd.Flags().IntVar(&gifFrames, "frames", 120, "number of frames")
	exportGIFCmd.Flags().BoolVar(&caption, "caption", true, "stamp view and time on each frame")
	exportGIFCmd.Flags().BoolVar(&allViews, "all", false, "render every view concurrently; --out names a directory")
	exportJSONCmd := &cobra.Command{
		Use:   "json [view]",
		Short: "one frame, or a stored recording, as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&fromRun, "recording", "", "export this recording instead of a live frame")
	exportCmd.AddCommand(exportSVGCmd, exportPNGCmd, exportGIFCmd, exportJSONCmd)

	viewsCmd := &cobra.Command{
		Use:   "views",
		Short: "list views",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "VIEW\tDESCRIPTION\tPRESETS")
			for _, name := range views.Names() {
				fmt.Fprintf(w, "%s\t%s\t%v\n", name, views.Describe(name), config.ListPresets(name))
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [view]",
		Short: "list available presets for a view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for view: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective config as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, "")
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "record every step of a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [view] [param]",
		Short: "measure the peak of a view across a parameter range",
		Args:  cobra.ExactArgs(2),
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "first parameter value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 1, "last parameter value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 10, "number of values")
	sweepCmd.Flags().Float64Var(&sweepAt, "at", 0, "elapsed time in seconds")
	sweepCmd.Flags().StringVar(&series, "series", "", "series to measure (default combined)")

	rootCmd.AddCommand(liveCmd, guiCmd, sampleCmd, recordCmd, listCmd, plotCmd, analyzeCmd, exportCmd, viewsCmd, presetsCmd, configCmd, scenarioCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	dir, err := homedir.Expand(dataDir)
	if err != nil {
		return fmt.Errorf("data directory: %w", err)
	}
	dataDir = dir

	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := tea.LogToFile("wavesim-debug.log", "wavesim")
	if err != nil {
		return err
	}
	logFile = f
	return nil
}

// loadConfig layers defaults, the preset, the config file and finally any
// flags given on the command line. name overrides the configured view.
func loadConfig(cmd *cobra.Command, name string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if name == "" {
		name = cfg.View
	}
	cfg.View = name

	if preset != "" && !config.ApplyPreset(cfg, name, preset) {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	viz.SetTheme(cfg.Theme)
	log.Printf("config: view=%s %dx%d fps=%d theme=%s", cfg.View, cfg.Width, cfg.Height, cfg.FPS, cfg.Theme)
	return cfg, nil
}

func viewArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// animationAt builds the view on a manual clock, sized from cfg and advanced
// to at seconds.
func animationAt(cfg *config.Config, seconds float64) (*views.Animation, error) {
	anim, err := views.NewAnimation(cfg.View, cfg, cfg.FPS)
	if err != nil {
		return nil, err
	}
	anim.View.Resize(cfg.Width, cfg.Height)
	anim.Seek(time.Duration(seconds * float64(time.Second)))
	return anim, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, viewArg(args))
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return viz.RunInteractive(cfg, gifPath)
	}
	v, err := views.New(cfg.View, cfg, nil)
	if err != nil {
		return err
	}
	return viz.Run(v, cfg.FPS, gifPath)
}

func sampleView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, viewArg(args))
	if err != nil {
		return err
	}
	anim, err := animationAt(cfg, at)
	if err != nil {
		return err
	}
	all := anim.View.Series()

	if asCSV {
		w := csv.NewWriter(os.Stdout)
		w.Write([]string{"series", "pixel", "t", "amplitude"})
		for _, s := range all {
			for _, p := range s.Frame {
				w.Write([]string{
					s.Name,
					strconv.Itoa(p.Pixel),
					strconv.FormatFloat(p.Time, 'f', 6, 64),
					strconv.FormatFloat(p.Amplitude, 'f', 6, 64),
				})
			}
		}
		w.Flush()
		return w.Error()
	}

	if len(all) == 0 {
		return fmt.Errorf("no data to sample")
	}
	fmt.Printf("view: %s\n", anim.View.Name())
	fmt.Printf("elapsed: %.3fs\n\n", anim.View.Elapsed())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "PIXEL\tT")
	for _, s := range all {
		fmt.Fprintf(w, "\t%s", s.Name)
	}
	fmt.Fprintln(w)
	if stride < 1 {
		stride = 1
	}
	for i := 0; i < len(all[0].Frame); i += stride {
		p := all[0].Frame[i]
		fmt.Fprintf(w, "%d\t%.4f", p.Pixel, p.Time)
		for _, s := range all {
			if i < len(s.Frame) {
				fmt.Fprintf(w, "\t%.3f", s.Frame[i].Amplitude)
			} else {
				fmt.Fprint(w, "\t-")
			}
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	last := all[len(all)-1]
	fmt.Println()
	return plotFrameSeries(last.Name, last.Frame)
}

func plotFrameSeries(name string, f wave.SampleFrame) error {
	if len(f) < 2 {
		return fmt.Errorf("no data to plot")
	}
	graph := asciigraph.Plot(f.Amplitudes(),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(name),
	)
	fmt.Println(graph)
	return nil
}

func recordView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, viewArg(args))
	if err != nil {
		return err
	}
	if recordFrames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", recordFrames)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	anim, err := animationAt(cfg, 0)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var samples []storage.Sample
	start := time.Now()
	err = anim.Run(ctx, recordFrames, func(i int) error {
		samples = append(samples, storage.Capture(anim.View, i)...)
		return nil
	})
	if err != nil {
		return err
	}

	meta := storage.Metadata(anim.View, anim.FPS, recordFrames, cfg.Width)
	id, err := st.Save(meta, samples)
	if err != nil {
		return err
	}

	fmt.Printf("recording: %s\n", id)
	fmt.Printf("saved to: %s\n", filepath.Join(st.Dir(), id))
	fmt.Printf("frames: %d (%.2fs at %d fps)\n", recordFrames, float64(recordFrames)/float64(anim.FPS), anim.FPS)
	fmt.Printf("samples: %d\n", len(samples))
	fmt.Printf("took: %v\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func listRecordings(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	recs, err := st.List()
	if err != nil {
		return err
	}

	if len(recs) == 0 {
		fmt.Printf("no recordings found in %s\n", st.Dir())
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVIEW\tTIME\tFRAMES\tFPS\tSERIES")
	for _, r := range recs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%v\n",
			r.ID,
			r.View,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Frames,
			r.FPS,
			r.Series,
		)
	}
	return w.Flush()
}

func loadRecording(id string) (*storage.RecordingMetadata, []storage.Sample, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(id)
	if err != nil {
		return nil, nil, err
	}
	samples, err := st.LoadSamples(id)
	if err != nil {
		return nil, nil, err
	}
	if len(samples) == 0 {
		return nil, nil, fmt.Errorf("no data in recording %s", id)
	}
	return meta, samples, nil
}

func plotRecording(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRecording(args[0])
	if err != nil {
		return err
	}

	n := storage.FrameCount(samples)
	frame := plotFrame
	if frame < 0 || frame >= n {
		frame = n - 1
	}

	fmt.Printf("recording: %s\n", meta.ID)
	fmt.Printf("view: %s\n", meta.View)
	fmt.Printf("frame: %d of %d\n\n", frame, n)

	for _, name := range meta.Series {
		if err := plotFrameSeries(name, storage.SeriesFrame(samples, frame, name)); err != nil {
			continue
		}
		fmt.Println()
	}
	return nil
}

func analyzeRecording(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRecording(args[0])
	if err != nil {
		return err
	}
	name := series
	if name == "" && len(meta.Series) > 0 {
		name = meta.Series[0]
	}

	n := storage.FrameCount(samples)
	elapsed := make([]float64, n)
	for _, smp := range samples {
		elapsed[smp.Frame] = smp.Elapsed
	}

	fmt.Printf("analysis: %s\n", meta.ID)
	fmt.Printf("view: %s  series: %s  frames: %d\n\n", meta.View, name, n)

	var ts, centers []float64
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FRAME\tELAPSED\tCENTER\tSPREAD\tPEAK\tAREA")
	step := max(1, n/10)
	for i := 0; i < n; i++ {
		st, err := analysis.PulseStats(storage.SeriesFrame(samples, i, name))
		if err != nil {
			log.Printf("frame %d: %v", i, err)
			continue
		}
		ts = append(ts, elapsed[i])
		centers = append(centers, st.Center)
		if i%step == 0 {
			fmt.Fprintf(w, "%d\t%.3fs\t%.4f\t%.4f\t%.2f\t%.4f\n", i, elapsed[i], st.Center, st.Spread, st.Peak, st.Area)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if speed, err := analysis.EstimateSpeed(ts, centers); err == nil {
		fmt.Printf("\ncenter speed: %.4f per second\n", speed)
	}

	pixel := probe
	if pixel < 0 {
		pixel = middlePixel(storage.SeriesFrame(samples, 0, name))
	}
	history := make([]float64, n)
	for _, smp := range samples {
		if smp.Series == name && smp.Pixel == pixel {
			history[smp.Frame] = smp.Amplitude
		}
	}

	ps := analysis.PowerSpectrum(history)
	if len(ps) < 2 {
		return nil
	}
	graph := asciigraph.Plot(ps,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum at pixel %d", pixel)),
	)
	fmt.Println()
	fmt.Println(graph)

	bin, _ := analysis.DominantBin(ps)
	freq := analysis.BinFrequency(bin, len(history), float64(meta.FPS))
	fmt.Printf("\ndominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	return nil
}

// middlePixel is the pixel of the middle sample; oscillation traces index
// samples rather than surface columns.
func middlePixel(f wave.SampleFrame) int {
	if len(f) == 0 {
		return 0
	}
	return f[len(f)/2].Pixel
}

func outputFor(name, ext string) string {
	if outPath != "" {
		return outPath
	}
	return name + "." + ext
}

func exportFrame(format string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, viewArg(args))
		if err != nil {
			return err
		}
		anim, err := animationAt(cfg, at)
		if err != nil {
			return err
		}
		path := outputFor(cfg.View, format)
		switch format {
		case "svg":
			err = export.SaveSVG(path, anim.View, cfg.Width, cfg.Height)
		case "png":
			err = export.SavePNG(path, anim.View, cfg.Width, cfg.Height)
		default:
			err = fmt.Errorf("unknown format: %s", format)
		}
		if err != nil {
			return err
		}
		fmt.Printf("exported %s\n", path)
		return nil
	}
}

func exportGIF(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, viewArg(args))
	if err != nil {
		return err
	}
	opts := export.GIFOptions{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Frames:     gifFrames,
		Background: "black",
		Caption:    caption,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if allViews {
		return exportAllGIFs(ctx, cfg, opts)
	}

	anim, err := animationAt(cfg, at)
	if err != nil {
		return err
	}
	g, err := export.RenderGIF(ctx, anim, opts)
	if err != nil {
		return err
	}
	path := outputFor(cfg.View, "gif")
	if err := export.SaveGIF(path, g); err != nil {
		return err
	}
	fmt.Printf("exported %s (%d frames)\n", path, len(g.Image))
	return nil
}

func exportAllGIFs(ctx context.Context, cfg *config.Config, opts export.GIFOptions) error {
	dir := outPath
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	batch := export.NewBatch(cfg, nil, opts)
	start := time.Now()
	gifs, err := batch.Run(ctx)
	if err != nil {
		return err
	}
	for i, name := range batch.Names() {
		path := filepath.Join(dir, name+".gif")
		if err := export.SaveGIF(path, gifs[i]); err != nil {
			return err
		}
		fmt.Printf("exported %s (%d frames)\n", path, len(gifs[i].Image))
	}
	fmt.Printf("took: %v\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	if fromRun != "" {
		meta, samples, err := loadRecording(fromRun)
		if err != nil {
			return err
		}
		path := outPath
		if path == "" {
			path = filepath.Join(dataDir, fromRun, "recording.json")
		}
		if err := export.ExportJSON(path, export.RecordingData{Metadata: *meta, Samples: samples}); err != nil {
			return err
		}
		fmt.Printf("exported %s\n", path)
		return nil
	}

	cfg, err := loadConfig(cmd, viewArg(args))
	if err != nil {
		return err
	}
	anim, err := animationAt(cfg, at)
	if err != nil {
		return err
	}
	path := outputFor(cfg.View, "json")
	if err := export.ExportJSON(path, export.Frame(anim.View)); err != nil {
		return err
	}
	fmt.Printf("exported %s\n", path)
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd, "")
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("%s\n", sc.Description)
	}
	metas, err := automation.RunScenario(ctx, sc, cfg, st)
	for _, m := range metas {
		fmt.Printf("  %s  %s  %d frames\n", m.ID, m.View, m.Frames)
	}
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := automation.RunSweep(ctx, &automation.ParameterSweep{
		View:     args[0],
		Param:    args[1],
		Min:      sweepMin,
		Max:      sweepMax,
		NumSteps: sweepSteps,
		At:       sweepAt,
		Series:   series,
	}, cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tPEAK\tPEAK_T\tAREA\n", strings.ToUpper(args[1]))
	peaks := make([]float64, len(results))
	for i, r := range results {
		fmt.Fprintf(w, "%.4f\t%.3f\t%.4f\t%.4f\n", r.ParamValue, r.Peak, r.PeakT, r.Area)
		peaks[i] = r.Peak
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(peaks,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("peak vs %s", args[1])),
	))
	return nil
}
