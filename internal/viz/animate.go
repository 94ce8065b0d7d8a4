package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/vibelab/internal/dynamo"
)

const DefaultFPS = 30

type TickMsg time.Time

// Animation replays a precomputed series by revealing a growing prefix on a
// fixed cadence. The axes are fixed to the full series so the curve does not
// rescale while it grows.
type Animation struct {
	title    string
	xLabel   string
	yLabel   string
	series   dynamo.Series
	lo, hi   float64
	frame    int
	interval time.Duration
	opts     Options
	running  bool
	progress progress.Model
}

// NewAnimation prepares an animation of the first series of p.
func NewAnimation(p dynamo.Panel, fps int, opts Options) Animation {
	if fps <= 0 {
		fps = DefaultFPS
	}
	var s dynamo.Series
	if clipped := p.Clipped(); len(clipped) > 0 {
		s = clipped[0]
	}
	lo, hi := p.Bounds()

	bar := progress.New(
		progress.WithScaledGradient(string(CurrentTheme.Accent), string(CurrentTheme.Success)),
		progress.WithoutPercentage(),
	)
	bar.Width = 30

	return Animation{
		title:    p.Title,
		xLabel:   p.XLabel,
		yLabel:   p.YLabel,
		series:   s,
		lo:       lo,
		hi:       hi,
		frame:    1,
		interval: time.Second / time.Duration(fps),
		opts:     opts.withDefaults(),
		running:  true,
		progress: bar,
	}
}

func (a Animation) tick() tea.Cmd {
	return tea.Tick(a.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (a Animation) Init() tea.Cmd {
	return a.tick()
}

// Update handles key presses and advances the frame on every tick.
func (a Animation) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.progress.Width = min(max(msg.Width-8, 20), 60)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case " ", "space":
			a.running = !a.running
		case "r":
			a.frame = 1
			a.running = true
		case "e":
			a.frame = a.series.Len()
		}
	case TickMsg:
		if a.running && a.frame < a.series.Len() {
			a.frame++
		}
		return a, a.tick()
	}
	return a, nil
}

// Frame returns the number of revealed samples.
func (a Animation) Frame() int {
	return a.frame
}

// Done reports whether the whole series is visible.
func (a Animation) Done() bool {
	return a.frame >= a.series.Len()
}

func (a Animation) View() string {
	n := a.series.Len()
	if n == 0 {
		return a.title + "\n  (no data)\n"
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(a.title) + "\n")

	// Columns grow with the revealed share so the x axis stays fixed.
	cols := int(math.Ceil(float64(a.opts.Width) * float64(a.frame) / float64(n)))
	cols = max(cols, 2)
	prefix := a.series.Y[:min(max(a.frame, 2), n)]

	chart := asciigraph.Plot(prefix,
		asciigraph.Height(a.opts.Height),
		asciigraph.Width(cols),
		asciigraph.LowerBound(a.lo),
		asciigraph.UpperBound(a.hi),
		asciigraph.Caption(fmt.Sprintf("%s vs %s", a.yLabel, a.xLabel)),
	)
	sb.WriteString(graphStyle.Render(chart) + "\n")

	idx := a.frame - 1
	status := StatusRunning.Render("PLAYING")
	if !a.running {
		status = StatusPaused.Render("PAUSED")
	} else if a.Done() {
		status = StatusPaused.Render("DONE")
	}
	sb.WriteString(status + "\n")
	sb.WriteString(MetricLabel.Render(a.xLabel) + MetricValue.Render(fmt.Sprintf("%.3f", a.series.X[idx])) + "\n")
	sb.WriteString(MetricLabel.Render(a.yLabel) + MetricValue.Render(fmt.Sprintf("%.4f", a.series.Y[idx])) + "\n")
	sb.WriteString(a.progress.ViewAs(float64(a.frame)/float64(n)) + "\n\n")
	sb.WriteString(Separator(a.opts.Width/2) + "\n")
	sb.WriteString(KeyHint.Render("SP:Pause  R:Restart  E:End  Q:Quit") + "\n")
	return sb.String()
}

// Animate runs the animation until the user quits.
func Animate(p dynamo.Panel, fps int, opts Options) error {
	_, err := tea.NewProgram(NewAnimation(p, fps, opts)).Run()
	return err
}
