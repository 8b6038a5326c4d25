package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/jwtui/internal/decoder"
)

// theme holds the style set for one palette. The dark palette is the
// default; --light switches to colors readable on light terminals.
type theme struct {
	normal    lipgloss.Style
	logo      lipgloss.Style
	failure   lipgloss.Style
	warning   lipgloss.Style
	success   lipgloss.Style
	primary   lipgloss.Style
	secondary lipgloss.Style
	help      lipgloss.Style
}

func newTheme(light bool) theme {
	if light {
		return theme{
			normal:    lipgloss.NewStyle().Foreground(lipgloss.Color("#5b5757")),
			logo:      lipgloss.NewStyle().Foreground(lipgloss.Color("#146149")).Bold(true).Italic(true),
			failure:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ad1914")),
			warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("#b8310f")),
			success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#146149")),
			primary:   lipgloss.NewStyle().Foreground(lipgloss.Color("#0052a3")),
			secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("#8b008b")),
			help:      lipgloss.NewStyle().Foreground(lipgloss.Color("#0052a3")),
		}
	}
	return theme{
		normal:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")),
		logo:      lipgloss.NewStyle().Foreground(lipgloss.Color("#48d596")).Bold(true).Italic(true),
		failure:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f9a7a4")),
		warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaa42")),
		success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#48d596")),
		primary:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00e6e6")),
		secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e571")),
		help:      lipgloss.NewStyle().Foreground(lipgloss.Color("#8ac4ff")),
	}
}

// chrome rows outside the content pane: logo, tab bar, token strip (3),
// content borders (2), status bar
const chromeHeight = 8

// View renders the full frame. It only reads model state; all mutation
// happens in Update.
func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}

	t := newTheme(m.lightTheme)

	if m.showHelp {
		return m.renderHelp(t)
	}

	title := lipgloss.JoinHorizontal(
		lipgloss.Top,
		t.logo.Render(" JWT UI "),
		t.normal.Render(" decode and verify JSON Web Tokens"),
	)

	sections := []string{
		title,
		m.renderTabBar(t),
		m.renderTokenStrip(t),
		m.renderContent(t),
		m.renderStatusBar(t),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTabBar renders the section tabs with the active one highlighted
func (m *Model) renderTabBar(t theme) string {
	var tabs []string
	for tab := Tab(0); tab < tabCount; tab++ {
		label := " " + tab.String() + " "
		if tab == m.activeTab {
			tabs = append(tabs, t.secondary.Bold(true).Underline(true).Render(label))
		} else {
			tabs = append(tabs, t.normal.Render(label))
		}
	}
	return strings.Join(tabs, t.normal.Render("│"))
}

// renderTokenStrip renders the one-line token box at the top. While the
// token is being edited it shows the live edit buffer with a cursor.
func (m *Model) renderTokenStrip(t theme) string {
	borderStyle := t.normal
	var content string

	switch {
	case m.mode == ModeEditingToken:
		borderStyle = t.secondary
		content = m.renderInputLine()
	case m.token == "":
		content = t.help.Render("press t to enter a token")
	default:
		content = m.token
	}

	inner := m.width - 4
	if inner < 1 {
		inner = 1
	}
	content = truncateLine(content, inner)

	return borderStyle.
		Border(lipgloss.RoundedBorder()).
		Width(m.width - 2).
		Render(content)
}

// renderContent renders the active tab's pane with its scroll offset applied
func (m *Model) renderContent(t theme) string {
	borderStyle := t.normal
	var body string

	if m.mode == ModeEditingSecret {
		borderStyle = t.secondary
		body = m.renderInputLine()
	} else {
		lines := m.tabLines(m.activeTab)
		offset := m.scroll[m.activeTab]
		if offset > len(lines) {
			offset = len(lines)
		}
		end := offset + m.contentHeight()
		if end > len(lines) {
			end = len(lines)
		}
		body = strings.Join(lines[offset:end], "\n")
	}

	height := m.contentHeight()

	return borderStyle.
		Border(lipgloss.RoundedBorder()).
		Width(m.width - 2).
		Height(height).
		Render(body)
}

// renderInputLine renders the edit buffer with a block cursor
func (m *Model) renderInputLine() string {
	buf := m.inputBuffer
	cursor := m.inputCursor
	if cursor > len(buf) {
		cursor = len(buf)
	}
	cursorStyle := lipgloss.NewStyle().Reverse(true)
	if cursor == len(buf) {
		return buf + cursorStyle.Render(" ")
	}
	return buf[:cursor] + cursorStyle.Render(string(buf[cursor])) + buf[cursor+1:]
}

// renderStatusBar renders the bottom line: validity badge, then either the
// last error or contextual key hints.
func (m *Model) renderStatusBar(t theme) string {
	badge := m.validityBadge(t)

	var right string
	switch {
	case m.errMsg != "":
		right = t.failure.Render(m.errMsg)
	case m.statusMsg != "":
		right = t.success.Render(m.statusMsg)
	case m.mode != ModeViewing:
		right = t.help.Render("enter: apply │ esc: cancel │ ctrl+v: paste")
	default:
		right = t.help.Render("tab: switch │ t: edit token │ e: edit secret │ c: copy │ ?: help │ ctrl+c: quit")
	}

	return badge + " " + right
}

func (m *Model) validityBadge(t theme) string {
	if m.result == nil {
		return t.normal.Render("[no token]")
	}
	label := "[" + m.result.Validity.String() + "]"
	switch m.result.Validity {
	case decoder.Valid:
		return t.success.Render(label)
	case decoder.InvalidSignature:
		return t.failure.Render(label)
	case decoder.Expired, decoder.UnsupportedAlgorithm:
		return t.warning.Render(label)
	}
	return t.primary.Render(label)
}

// renderHelp renders the scrollable help modal
func (m *Model) renderHelp(t theme) string {
	title := t.logo.Render(" Help ")
	body := m.helpView.View()
	footer := t.help.Render("esc/q/?: close │ j/k: scroll")

	return t.normal.
		Border(lipgloss.RoundedBorder()).
		Width(m.width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, body, footer))
}

func (m *Model) updateHelpView() {
	m.helpView.SetContent(helpText)
	m.helpView.GotoTop()
}

const helpText = `Keybindings

Viewing
  tab / shift+tab   cycle through Header, Payload and Secret tabs
  up, k / down, j   scroll the active tab
  t                 edit the token
  e                 edit the secret (on the Secret tab)
  c                 copy the active tab's content to the clipboard
  ?                 toggle this help
  ctrl+c            quit

Editing
  enter             apply the new value and re-decode
  esc               discard changes
  ctrl+v            paste from clipboard
  ctrl+k            clear the input
  left/right        move the cursor

Validity
  unverified        no secret supplied, signature not checked
  valid             signature matched and token is not expired
  invalid signature recomputed MAC does not match
  expired           signature matched but exp is in the past
  unsupported       alg is outside HS256/HS384/HS512`

// contentHeight is the number of content rows visible inside the active pane
func (m *Model) contentHeight() int {
	h := m.height - chromeHeight
	if h < 1 {
		return 1
	}
	return h
}

// tabLines returns the active content split into lines, for scrolling
func (m *Model) tabLines(tab Tab) []string {
	return strings.Split(m.tabContent(tab), "\n")
}

// tabContent builds the text shown in a tab
func (m *Model) tabContent(tab Tab) string {
	switch tab {
	case TabHeader:
		if m.result == nil {
			return "No token decoded. Press t to enter a token."
		}
		return prettyJSON(m.result.Header)
	case TabPayload:
		if m.result == nil {
			return "No token decoded. Press t to enter a token."
		}
		return prettyJSON(m.result.Claims)
	case TabSecret:
		if m.secret == "" {
			return "No secret provided. Press e to set one for signature verification."
		}
		return m.secret
	}
	return ""
}

// prettyJSON pretty-prints a JSON object with sorted keys
func prettyJSON(v map[string]interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// truncateLine clips a rendered line to width cells, keeping it on one row
func truncateLine(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	// byte-wise clip is fine for base64url token text
	if len(s) > width {
		return s[:width-1] + "…"
	}
	return s
}
