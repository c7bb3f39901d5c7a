package ui

import (
	"context"
	"io"
	"strings"
	"time"

	"charm.land/bubbles/v2/progress"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"
	"github.com/rivo/uniseg"

	"github.com/mark3labs/raindrop/internal/history"
	"github.com/mark3labs/raindrop/internal/locale"
	"github.com/mark3labs/raindrop/internal/translate"
)

// Threshold is the number of characters that submits the input on its own.
const Threshold = 10

const (
	// submitDelay lets the user see the full bar before the input clears.
	submitDelay = 300 * time.Millisecond
	// completeFlash is how long the bar keeps its "complete" mark.
	completeFlash = 600 * time.Millisecond
)

// healthChecker is implemented by translators that can probe their server.
type healthChecker interface {
	Health(ctx context.Context) (translate.Health, error)
}

// scheduler delivers msg after d. It is tea.Tick in production.
type scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

func tick(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// Options configures a Widget.
type Options struct {
	// Translator performs submissions. Required.
	Translator translate.Translator
	// Catalog supplies user-facing strings. Defaults to English.
	Catalog *locale.Catalog
	// Logger receives debug output. Defaults to a discarding logger.
	Logger *log.Logger
	// Endpoint is shown in the status line.
	Endpoint string
	// Hint enables the startup hint.
	Hint bool
	// Context bounds in-flight translations; cancel it on shutdown.
	Context context.Context
	// Width and Height are the initial terminal size.
	Width  int
	Height int
}

// Widget is the Bubble Tea model of the rain translator: a text input that
// fills a progress bar and, once submitted, a newest-first history of
// translations.
//
// Every state change happens in Update; translations run as commands and
// report back with translatedMsg, so the history needs no locking.
type Widget struct {
	input   textinput.Model
	bar     progress.Model
	spinner spinner.Model

	history  *history.List
	rendered map[string]string // entry ID -> rendered output

	translator translate.Translator
	catalog    *locale.Catalog
	logger     *log.Logger
	ctx        context.Context
	now        func() time.Time
	after      scheduler

	length      int
	complete    bool
	completeSeq int
	// gen counts accepted submissions. A threshold submission scheduled in an
	// earlier generation is stale once another submission reset the input.
	gen int

	hintEnabled bool
	hint        hintPhase

	endpoint    string
	health      string
	healthState healthState

	width  int
	height int
}

type healthState int

const (
	healthUnknown healthState = iota
	healthOK
	healthDegraded
	healthDown
)

// NewWidget builds the widget with a focused, empty input.
func NewWidget(opts Options) *Widget {
	width := opts.Width
	if width == 0 {
		width = 80
	}
	height := opts.Height
	if height == 0 {
		height = 24
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = locale.New("en")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	ti := textinput.New()
	ti.Placeholder = catalog.T(locale.Placeholder)
	ti.Prompt = "☔ "
	ti.Focus()

	w := &Widget{
		input:       ti,
		bar:         progress.New(progress.WithoutPercentage()),
		spinner:     spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		history:     history.NewList(),
		rendered:    map[string]string{},
		translator:  opts.Translator,
		catalog:     catalog,
		logger:      logger,
		ctx:         ctx,
		now:         time.Now,
		after:       tick,
		hintEnabled: opts.Hint,
		endpoint:    opts.Endpoint,
		width:       width,
		height:      height,
	}
	w.resize()
	return w
}

// Init implements tea.Model. It starts the spinner, schedules the startup
// hint and probes the server when the translator supports it.
func (w *Widget) Init() tea.Cmd {
	cmds := []tea.Cmd{w.spinner.Tick}
	if w.hintEnabled {
		cmds = append(cmds, w.after(hintDelay, hintMsg{phase: hintFadingIn}))
	}
	if hc, ok := w.translator.(healthChecker); ok {
		ctx := w.ctx
		cmds = append(cmds, func() tea.Msg {
			h, err := hc.Health(ctx)
			return healthMsg{health: h, err: err}
		})
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (w *Widget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		w.resize()
		return w, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return w, tea.Quit
		case "enter":
			return w, w.onEnter()
		}
		return w, w.updateInput(msg)

	case tea.PasteMsg:
		return w, w.updateInput(msg)

	case thresholdMsg:
		if msg.gen != w.gen {
			w.logger.Debug("dropping superseded threshold submission", "text", msg.text)
			return w, nil
		}
		cmd := w.submit(msg.text)
		return w, tea.Batch(cmd, w.resetInput())

	case completeClearMsg:
		if msg.seq == w.completeSeq {
			w.complete = false
		}
		return w, nil

	case translatedMsg:
		w.settle(msg)
		return w, nil

	case hintMsg:
		return w, w.advanceHint(msg.phase)

	case healthMsg:
		w.applyHealth(msg)
		return w, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		w.spinner, cmd = w.spinner.Update(msg)
		return w, cmd
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

// updateInput forwards msg to the text input and runs onInputChanged when the
// value actually changed.
func (w *Widget) updateInput(msg tea.Msg) tea.Cmd {
	before := w.input.Value()
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	if w.input.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, w.onInputChanged())
}

// onInputChanged recomputes progress. Reaching exactly Threshold characters
// marks the bar complete and schedules a submission of the text as it is
// now; jumping past Threshold (a long paste) does not.
func (w *Widget) onInputChanged() tea.Cmd {
	text := w.input.Value()
	w.length = CharCount(text)
	if w.length != Threshold {
		return nil
	}

	w.complete = true
	w.completeSeq++
	w.logger.Debug("threshold reached", "text", text)
	return tea.Batch(
		w.after(submitDelay, thresholdMsg{gen: w.gen, text: text}),
		w.after(completeFlash, completeClearMsg{seq: w.completeSeq}),
	)
}

// onEnter submits whatever has been typed, provided it is not blank.
func (w *Widget) onEnter() tea.Cmd {
	text := w.input.Value()
	if strings.TrimSpace(text) == "" {
		return nil
	}
	cmd := w.submit(text)
	return tea.Batch(cmd, w.resetInput())
}

// submit records a pending entry and returns the command that translates it.
// Each command reports back under its own entry ID; later submissions never
// cancel earlier ones.
func (w *Widget) submit(text string) tea.Cmd {
	entry := history.NewEntry(text, w.now())
	if evicted := w.history.Push(entry); evicted != nil {
		delete(w.rendered, evicted.ID)
		w.logger.Debug("evicted history entry", "id", evicted.ID, "state", evicted.State)
	}
	w.gen++
	w.logger.Info("submitting", "id", entry.ID, "text", text)

	translator, ctx, id := w.translator, w.ctx, entry.ID
	return func() tea.Msg {
		out, err := translator.Translate(ctx, text)
		return translatedMsg{id: id, output: out, err: err}
	}
}

// settle applies a translation result to its entry. Results for entries that
// have since been evicted are dropped.
func (w *Widget) settle(msg translatedMsg) {
	var ok bool
	if msg.err != nil {
		w.logger.Warn("translation failed", "id", msg.id, "err", msg.err)
		ok = w.history.Fail(msg.id, w.errorText(msg.err))
	} else {
		w.logger.Info("translation received", "id", msg.id)
		ok = w.history.Resolve(msg.id, msg.output)
		if ok {
			w.rendered[msg.id] = RenderOutput(msg.output, w.contentWidth())
		}
	}
	if !ok {
		w.logger.Debug("discarding result for evicted entry", "id", msg.id)
	}
}

// errorText is what a failed entry shows: the server's own message for API
// errors, a fixed localized message for anything else.
func (w *Widget) errorText(err error) string {
	if apiErr, ok := translate.IsAPIError(err); ok {
		return apiErr.Message
	}
	return w.catalog.T(locale.NetworkError)
}

// resetInput clears the input and progress and keeps the input focused.
func (w *Widget) resetInput() tea.Cmd {
	w.input.SetValue("")
	w.length = 0
	if w.input.Focused() {
		return nil
	}
	return w.input.Focus()
}

// advanceHint moves the startup hint through its lifecycle. The hint only
// appears if nothing was submitted during the initial delay.
func (w *Widget) advanceHint(phase hintPhase) tea.Cmd {
	switch phase {
	case hintFadingIn:
		if w.hint != hintPending {
			return nil
		}
		if !w.history.Empty() {
			w.hint = hintRemoved
			return nil
		}
		w.hint = hintFadingIn
		return tea.Batch(
			w.after(hintFadeIn, hintMsg{phase: hintShown}),
			w.after(hintLife, hintMsg{phase: hintFadingOut}),
		)
	case hintShown:
		if w.hint == hintFadingIn {
			w.hint = hintShown
		}
	case hintFadingOut:
		if w.hint.visible() {
			w.hint = hintFadingOut
			return w.after(hintFadeOut, hintMsg{phase: hintRemoved})
		}
	case hintRemoved:
		w.hint = hintRemoved
	}
	return nil
}

func (w *Widget) applyHealth(msg healthMsg) {
	switch {
	case msg.err != nil:
		w.healthState = healthDown
		w.health = "unreachable"
		w.logger.Warn("health probe failed", "err", msg.err)
	case msg.health.Healthy():
		w.healthState = healthOK
		w.health = "healthy"
	default:
		w.healthState = healthDegraded
		w.health = "model unavailable"
	}
}

// resize re-flows width-dependent parts, including already rendered output.
func (w *Widget) resize() {
	w.input.SetWidth(max(w.width-6, 10))
	w.bar.SetWidth(max(w.width-12, 10))
	for _, e := range w.history.Entries() {
		if e.State == history.Resolved {
			w.rendered[e.ID] = RenderOutput(e.Output, w.contentWidth())
		}
	}
}

// contentWidth is the text width inside a history card.
func (w *Widget) contentWidth() int {
	return max(w.width-6, 20)
}

// cardWidth is the outer width of a history card: content, padding, border.
func (w *Widget) cardWidth() int {
	return w.contentWidth() + 4
}

// Percentage is the input's progress towards Threshold, in percent.
func (w *Widget) Percentage() float64 {
	return float64(w.length) / Threshold * 100
}

// Length is the number of characters currently in the input.
func (w *Widget) Length() int {
	return w.length
}

// Complete reports whether the progress bar carries its "complete" mark.
func (w *Widget) Complete() bool {
	return w.complete
}

// History returns the submissions, newest first.
func (w *Widget) History() []*history.Entry {
	return w.history.Entries()
}

// Value returns the current input text.
func (w *Widget) Value() string {
	return w.input.Value()
}

// CharCount counts user-perceived characters, so a combined emoji or an
// accented letter typed as two code points counts once.
func CharCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
