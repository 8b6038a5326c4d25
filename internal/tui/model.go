package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/jwtui/internal/decoder"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeViewing Mode = iota
	ModeEditingToken
	ModeEditingSecret
)

// Tab identifies a decoded section panel
type Tab int

const (
	TabHeader Tab = iota
	TabPayload
	TabSecret

	tabCount = 3
)

func (t Tab) String() string {
	switch t {
	case TabHeader:
		return "Header"
	case TabPayload:
		return "Payload"
	case TabSecret:
		return "Secret"
	}
	return "Unknown"
}

// Model represents the TUI state
type Model struct {
	// Current inputs and decode outcome
	token  string
	secret string
	result *decoder.Result
	errMsg string

	// UI state
	mode      Mode
	activeTab Tab
	scroll    [tabCount]int
	width     int
	height    int
	statusMsg string

	// Input editor state (mode != ModeViewing)
	inputBuffer string
	inputCursor int

	// Help modal state
	showHelp bool
	helpView viewport.Model

	tickRate   time.Duration
	lightTheme bool
}

// New creates a new TUI model. A non-empty initial token is decoded
// immediately so the first frame already shows a result.
func New(opts Options) Model {
	m := Model{
		token:    opts.Token,
		secret:   opts.Secret,
		mode:     ModeViewing,
		tickRate: opts.TickRate,

		lightTheme: opts.Light,
		helpView:   viewport.New(80, 20),
	}
	if m.token != "" {
		m.decodeCurrent()
	}
	return m
}

// Init arms the periodic tick
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model. Exactly one message is
// applied per call; the bubbletea runtime serializes delivery, so state
// transitions happen in a deterministic order.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)

	case tea.MouseMsg:
		// Mouse capture is off so text select/copy keeps working; if wheel
		// events arrive anyway, scroll the active panel with them.
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollBy(-1)
		case tea.MouseButtonWheelDown:
			m.scrollBy(1)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpView.Width = max(msg.Width-4, 1)
		m.helpView.Height = max(msg.Height-6, 1)
		m.clampScroll()

	case tickMsg:
		// Ticks only drive the redraw cadence; they never change mode
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// decodeCurrent decodes and validates the current token/secret pair.
// On decode failure the previous result is kept so it stays viewable;
// only the error message is replaced.
func (m *Model) decodeCurrent() {
	result, err := decoder.DecodeAndValidate(m.token, m.secret, time.Now())
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.result = result
	m.errMsg = ""
	m.scroll = [tabCount]int{}
}

// scrollBy adjusts the active tab's scroll offset, floored at zero and
// capped so the last content line stays in view.
func (m *Model) scrollBy(delta int) {
	offset := m.scroll[m.activeTab] + delta
	if max := m.maxScroll(m.activeTab); offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	m.scroll[m.activeTab] = offset
}

func (m *Model) maxScroll(tab Tab) int {
	lines := len(m.tabLines(tab))
	max := lines - m.contentHeight()
	if max < 0 {
		return 0
	}
	return max
}

func (m *Model) clampScroll() {
	for tab := Tab(0); tab < tabCount; tab++ {
		if max := m.maxScroll(tab); m.scroll[tab] > max {
			m.scroll[tab] = max
		}
	}
}
