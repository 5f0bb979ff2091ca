// Command ls-planets renders four orbiting planets against a starfield in the
// terminal. Scrolling or dragging swaps the featured planet.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-planets/internal/asset"
	"github.com/litescript/ls-planets/internal/logging"
	"github.com/litescript/ls-planets/internal/render"
	"github.com/litescript/ls-planets/internal/scene"
	"github.com/litescript/ls-planets/internal/scroll"
	"github.com/litescript/ls-planets/internal/ui"
	"github.com/litescript/ls-planets/internal/version"
)

const (
	defaultFPS = 20
	minFPS     = 1
	maxFPS     = 60

	minPixelRatio = 1.0
	maxPixelRatio = 2.0

	defaultAssetTimeout = 15 * time.Second
)

// snapshotOptions configures a single headless frame.
type snapshotOptions struct {
	Scene   scene.Config
	Render  render.Options
	Width   int
	Height  int
	At      time.Duration
	ASCII   bool
	Timeout time.Duration
}

func main() {
	// Parse flags
	assetDir := flag.String("assets", "./assets", "Directory textures are loaded from")
	envURL := flag.String("env", scene.DefaultEnvironmentURL, "Environment map (.hdr URL or path)")
	fps := flag.Int("fps", defaultFPS, "Animation frames per second (1-60)")
	pixelRatio := flag.Float64("pixel-ratio", 1, "Supersampling per pixel axis (1-2)")
	exposure := flag.Float64("exposure", 1, "Exposure multiplier")
	throttleWindow := flag.Duration("throttle", scroll.DefaultConfig().Window, "Minimum time between accepted scrolls")
	tweenDuration := flag.Duration("tween", scroll.DefaultConfig().Duration, "Heading and rotation animation duration")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Write logs to file (TUI mode discards logs otherwise)")
	snapshot := flag.Bool("snapshot", false, "Render one frame to stdout instead of starting the TUI")
	width := flag.Int("width", 80, "Snapshot width in columns")
	height := flag.Int("height", 24, "Snapshot height in rows")
	at := flag.Duration("at", 0, "Elapsed scene time for the snapshot")
	asciiMode := flag.Bool("ascii", false, "Snapshot as plain ASCII")
	assetTimeout := flag.Duration("asset-timeout", defaultAssetTimeout, "How long to wait for assets")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("ls-planets v%s\n", version.Version)
		return
	}

	// Validate ranges
	if *fps < minFPS {
		*fps = minFPS
	} else if *fps > maxFPS {
		*fps = maxFPS
	}
	if *pixelRatio < minPixelRatio {
		*pixelRatio = minPixelRatio
	} else if *pixelRatio > maxPixelRatio {
		*pixelRatio = maxPixelRatio
	}

	sceneCfg := scene.DefaultConfig()
	sceneCfg.EnvironmentURL = *envURL
	if err := sceneCfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid scene: %v\n", err)
		os.Exit(1)
	}

	renderOpts := render.DefaultOptions()
	renderOpts.PixelRatio = *pixelRatio
	renderOpts.Exposure = *exposure

	scrollCfg := scroll.DefaultConfig()
	scrollCfg.Window = *throttleWindow
	scrollCfg.Duration = *tweenDuration

	// Set up logging. The TUI owns the terminal, so logs go to a file or nowhere.
	level := logging.ParseLevel(*logLevel)
	var logger *logging.Logger
	switch {
	case *logFile != "":
		l, closer, err := logging.OpenFile(*logFile, level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer closer.Close()
		logger = l
	case *snapshot:
		logger = logging.New(level)
	default:
		logger = logging.Discard()
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	loader := asset.NewLoader(
		asset.WithBaseDir(*assetDir),
		asset.WithTimeout(*assetTimeout),
		asset.WithLogger(logger.With("asset")),
	)

	if *snapshot {
		opts := snapshotOptions{
			Scene:   sceneCfg,
			Render:  renderOpts,
			Width:   *width,
			Height:  *height,
			At:      *at,
			ASCII:   *asciiMode || !term.IsTerminal(int(os.Stdout.Fd())),
			Timeout: *assetTimeout,
		}
		if err := runSnapshot(ctx, os.Stdout, loader, opts, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger.Info("ls-planets v%s starting", version.Version)

	// Start every load before the first frame
	assets := scene.StartLoading(ctx, loader, sceneCfg)

	model := ui.New(ctx, assets, ui.Options{
		Scene:         sceneCfg,
		Scroll:        scrollCfg,
		Render:        renderOpts,
		FrameInterval: time.Second / time.Duration(*fps),
		Logger:        logger.With("ui"),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	// Run TUI (blocks until quit)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runSnapshot loads the scene, waits up to opts.Timeout for its assets and
// writes one frame to w. Assets still pending are left out.
func runSnapshot(ctx context.Context, w io.Writer, loader *asset.Loader, opts snapshotOptions, logger *logging.Logger) error {
	if opts.Width < 1 || opts.Height < 1 {
		return fmt.Errorf("snapshot size %dx%d: must be positive", opts.Width, opts.Height)
	}

	assets := scene.StartLoading(ctx, loader, opts.Scene)

	waitCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()
	if err := assets.Wait(waitCtx); err != nil {
		logger.Warn("rendering without pending assets: %v", err)
	}

	s := scene.Build(opts.Scene)
	applied := assets.ApplyLoaded(s)
	logger.Debug("applied %d of %d assets", applied, len(assets.Slots()))
	s.SetSpin(s.SpinAt(opts.At.Seconds()))

	r := render.New(opts.Render)
	r.SetSize(opts.Width, opts.Height)
	cam := scene.NewCamera(opts.Scene.Camera, r.Aspect())
	frame := r.Render(s, cam)

	out := frame.ANSI()
	if opts.ASCII {
		out = frame.ASCII()
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
