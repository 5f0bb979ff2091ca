// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-planets/internal/asset"
	"github.com/litescript/ls-planets/internal/logging"
	"github.com/litescript/ls-planets/internal/render"
	"github.com/litescript/ls-planets/internal/scene"
	"github.com/litescript/ls-planets/internal/scroll"
	"github.com/litescript/ls-planets/internal/tween"
	"github.com/litescript/ls-planets/internal/version"
)

const (
	headingRows = 3
	footerRows  = 2

	// DefaultFrameInterval is the animation tick period.
	DefaultFrameInterval = 50 * time.Millisecond
)

// Msg types for Bubble Tea
type (
	// FrameMsg drives the animation loop.
	FrameMsg time.Time

	// AssetLoadedMsg signals that an asset slot resolved, loaded or failed.
	AssetLoadedMsg struct {
		Slot scene.Slot
	}
)

// Options configures the root model.
type Options struct {
	Scene         scene.Config
	Scroll        scroll.Config
	Render        render.Options
	FrameInterval time.Duration
	Logger        *logging.Logger

	// Now returns the current time for input events. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns the options of the stock scene.
func DefaultOptions() Options {
	return Options{
		Scene:         scene.DefaultConfig(),
		Scroll:        scroll.DefaultConfig(),
		Render:        render.DefaultOptions(),
		FrameInterval: DefaultFrameInterval,
	}
}

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	ctx    context.Context
	assets *scene.Assets
	logger *logging.Logger
	now    func() time.Time

	// Scene and animation
	scene    *scene.Scene
	camera   *scene.Camera
	renderer *render.Renderer
	timeline *tween.Timeline
	pipeline *scroll.Pipeline
	start    time.Time
	interval time.Duration
	frame    *render.Frame

	// UI state
	width    int
	height   int
	ready    bool
	animTick int // Animation tick for spinner and shimmer
	touching bool

	// Sub-models
	headings HeadingsModel
}

// New creates a new root UI model. assets may be nil when nothing is loaded.
func New(ctx context.Context, assets *scene.Assets, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}

	sc := scene.Build(opts.Scene)
	renderer := render.New(opts.Render)
	camera := scene.NewCamera(opts.Scene.Camera, renderer.Aspect())
	timeline := tween.NewTimeline()

	titles := make([]string, len(opts.Scene.Planets))
	for i, p := range opts.Scene.Planets {
		titles[i] = p.Name
	}
	headings := NewHeadingsModel(titles)

	animator := &scroll.TweenAnimator{
		Timeline: timeline,
		Headings: headings.Offsets(),
		Group:    sc.GroupRotationY(),
		Duration: opts.Scroll.Duration,
		Ease:     tween.ExpoInOut,
	}

	return Model{
		ctx:      ctx,
		assets:   assets,
		logger:   opts.Logger,
		now:      opts.Now,
		scene:    sc,
		camera:   camera,
		renderer: renderer,
		timeline: timeline,
		pipeline: scroll.NewPipeline(opts.Scroll, animator, opts.Logger.With("scroll")),
		start:    opts.Now(),
		interval: opts.FrameInterval,
		headings: headings,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{frameCmd(m.interval)}
	if m.assets != nil {
		for _, slot := range m.assets.Slots() {
			cmds = append(cmds, waitAssetCmd(m.ctx, m.assets, slot))
		}
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Headings strip on top, footer below
		canvasRows := msg.Height - headingRows - footerRows
		m.renderer.SetSize(msg.Width, canvasRows)
		m.camera.SetAspect(m.renderer.Aspect())
		m.headings = m.headings.SetSize(msg.Width)
		m.frame = nil

	case FrameMsg:
		cmds = append(cmds, frameCmd(m.interval))
		m.animTick++
		m.advance(time.Time(msg))

	case AssetLoadedMsg:
		if m.assets != nil && m.assets.Apply(m.scene, msg.Slot) {
			m.logger.Info("%s ready", msg.Slot.Label)
			m.frame = nil
		}
	}

	return m, tea.Batch(cmds...)
}

// advance runs one animation frame at t.
func (m *Model) advance(t time.Time) {
	elapsed := t.Sub(m.start).Seconds()
	m.scene.SetSpin(m.scene.SpinAt(elapsed))
	m.timeline.Step(t)
	if m.ready {
		m.frame = m.renderer.Render(m.scene, m.camera)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	frame := m.frame
	if frame == nil {
		frame = m.renderer.Render(m.scene, m.camera)
	}

	return m.headings.View() + "\n" + frame.ANSI() + "\n" + m.renderFooter()
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)

	// Animated spinner frames
	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]

	var statuses []string
	pending := false
	if m.assets != nil {
		for _, slot := range m.assets.Slots() {
			switch m.assets.Status(slot) {
			case asset.StatusLoaded:
				statuses = append(statuses, okStyle.Render("✓")+dimStyle.Render(" "+slot.Label))
			case asset.StatusFailed:
				statuses = append(statuses, errorStyle.Render("✗")+dimStyle.Render(" "+slot.Label))
			default:
				pending = true
				statuses = append(statuses, accentStyle.Render(spinner)+dimStyle.Render(" "+slot.Label))
			}
		}
	}

	state := m.pipeline.State()
	heading := activeStyle.Render(fmt.Sprintf("%d/%d %s", state.Index+1, scroll.Headings, m.headings.Title(state.Index)))
	if now := m.now(); m.pipeline.Busy(now) {
		heading += errorStyle.Render(fmt.Sprintf(" locked %.1fs", m.pipeline.Cooldown(now).Seconds()))
	}

	line := "  " + heading
	if len(statuses) > 0 {
		line += "  " + dimStyle.Render("|") + "  " + strings.Join(statuses, " ")
	}
	if pending {
		line += "  " + m.renderShimmerText("loading assets...")
	}

	help := dimStyle.Render(fmt.Sprintf("  wheel/drag: change planet | q: quit | v%s", version.Version))

	return line + "\n" + help
}

// renderShimmerText renders text with a subtle moving shine effect.
func (m Model) renderShimmerText(text string) string {
	runes := []rune(text)
	textLen := len(runes)
	if textLen == 0 {
		return ""
	}

	// Shimmer sweeps across with padding for entry and exit
	pos := m.animTick % (textLen + 8)

	var result strings.Builder

	for i, r := range runes {
		dist := i - pos + 4
		if dist < 0 {
			dist = -dist
		}

		var r8, g8, b8 int
		if dist <= 1 {
			r8, g8, b8 = 180, 160, 220
		} else if dist <= 3 {
			r8, g8, b8 = 140, 120, 180
		} else if dist <= 5 {
			r8, g8, b8 = 110, 90, 150
		} else {
			r8, g8, b8 = 80, 70, 120
		}

		hexColor := fmt.Sprintf("#%02X%02X%02X", r8, g8, b8)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor))
		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}

// Scene returns the model's scene graph.
func (m Model) Scene() *scene.Scene {
	return m.scene
}

// Pipeline returns the scroll pipeline.
func (m Model) Pipeline() *scroll.Pipeline {
	return m.pipeline
}

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// waitAssetCmd blocks until slot resolves. It yields no message when ctx ends first.
func waitAssetCmd(ctx context.Context, assets *scene.Assets, slot scene.Slot) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-assets.Done(slot):
			return AssetLoadedMsg{Slot: slot}
		case <-ctx.Done():
			return nil
		}
	}
}
