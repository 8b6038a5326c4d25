package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	// Transient status messages last until the next key press
	m.statusMsg = ""

	if m.showHelp {
		return m.handleHelpKeys(msg)
	}

	switch m.mode {
	case ModeViewing:
		return m.handleViewingKeys(msg)
	case ModeEditingToken, ModeEditingSecret:
		return m.handleEditingKeys(msg)
	}

	return nil
}

// handleViewingKeys handles keyboard input while browsing decoded sections
func (m *Model) handleViewingKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		m.activeTab = (m.activeTab + 1) % tabCount
		m.scroll[m.activeTab] = 0

	case "shift+tab":
		m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		m.scroll[m.activeTab] = 0

	case "t":
		m.mode = ModeEditingToken
		m.inputBuffer = m.token
		m.inputCursor = len(m.inputBuffer)

	case "e":
		// Secret editing only makes sense from the secret tab
		if m.activeTab == TabSecret {
			m.mode = ModeEditingSecret
			m.inputBuffer = m.secret
			m.inputCursor = len(m.inputBuffer)
		}

	case "up", "k":
		m.scrollBy(-1)

	case "down", "j":
		m.scrollBy(1)

	case "c":
		return m.copyActiveTab()

	case "?":
		m.showHelp = true
		m.updateHelpView()
	}

	// Unrecognized keys are no-ops
	return nil
}

// handleEditingKeys handles keyboard input while editing the token or secret
func (m *Model) handleEditingKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.commitInput()

	case "esc":
		// Discard the buffer without re-decoding
		m.mode = ModeViewing
		m.inputBuffer = ""
		m.inputCursor = 0

	case "left":
		if m.inputCursor > 0 {
			m.inputCursor--
		}

	case "right":
		if m.inputCursor < len(m.inputBuffer) {
			m.inputCursor++
		}

	case "home", "ctrl+a":
		m.inputCursor = 0

	case "end", "ctrl+e":
		m.inputCursor = len(m.inputBuffer)

	case "backspace":
		if m.inputCursor > 0 {
			m.inputBuffer = m.inputBuffer[:m.inputCursor-1] + m.inputBuffer[m.inputCursor:]
			m.inputCursor--
		}

	case "delete":
		if m.inputCursor < len(m.inputBuffer) {
			m.inputBuffer = m.inputBuffer[:m.inputCursor] + m.inputBuffer[m.inputCursor+1:]
		}

	case "ctrl+k":
		m.inputBuffer = ""
		m.inputCursor = 0

	case "ctrl+v", "shift+insert", "super+v":
		// Paste from clipboard at cursor position; tokens are usually pasted,
		// not typed. If the clipboard read fails, don't block - just return.
		if text, err := clipboard.ReadAll(); err == nil {
			m.insertInput(text)
		}

	default:
		if len(msg.String()) == 1 {
			m.insertInput(msg.String())
		}
	}

	return nil
}

// handleHelpKeys handles keyboard input in the help modal
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", "?":
		m.showHelp = false
	case "up", "k":
		m.helpView.ScrollUp(1)
	case "down", "j":
		m.helpView.ScrollDown(1)
	}
	return nil
}

// insertInput inserts text into the edit buffer at the cursor position
func (m *Model) insertInput(text string) {
	m.inputBuffer = m.inputBuffer[:m.inputCursor] + text + m.inputBuffer[m.inputCursor:]
	m.inputCursor += len(text)
}

// commitInput applies the edit buffer as the new token or secret, triggers a
// re-decode and returns to viewing mode. A failed decode keeps the previous
// result and only sets the error message.
func (m *Model) commitInput() {
	switch m.mode {
	case ModeEditingToken:
		m.token = m.inputBuffer
		if m.token == "" {
			m.result = nil
			m.errMsg = ""
		} else {
			m.decodeCurrent()
		}

	case ModeEditingSecret:
		m.secret = m.inputBuffer
		// Re-validate the current token against the new secret
		if m.token != "" {
			m.decodeCurrent()
		}
	}

	m.mode = ModeViewing
	m.inputBuffer = ""
	m.inputCursor = 0
}

// copyActiveTab copies the active tab's content to the system clipboard
func (m *Model) copyActiveTab() tea.Cmd {
	content := m.tabContent(m.activeTab)
	if content == "" {
		return nil
	}
	if err := clipboard.WriteAll(content); err != nil {
		m.statusMsg = fmt.Sprintf("Failed to copy to clipboard: %v", err)
		return nil
	}
	m.statusMsg = fmt.Sprintf("%s copied to clipboard", m.activeTab)
	return nil
}
