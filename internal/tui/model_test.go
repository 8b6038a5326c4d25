package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang-jwt/jwt/v5"
	"github.com/studiowebux/jwtui/internal/decoder"
)

func signedToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	if opts.TickRate == 0 {
		opts.TickRate = 250 * time.Millisecond
	}
	m := New(opts)
	// Give the model a terminal size, as the runtime would on startup
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return &m
}

func TestNew_InitialDecode(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "init"}, "pw")
	m := newTestModel(t, Options{Token: token, Secret: "pw"})

	if m.result == nil {
		t.Fatal("expected initial token to be decoded")
	}
	if m.result.Validity != decoder.Valid {
		t.Errorf("validity = %v, want Valid", m.result.Validity)
	}
	if m.mode != ModeViewing {
		t.Errorf("mode = %v, want ModeViewing", m.mode)
	}
	if m.activeTab != TabHeader {
		t.Errorf("activeTab = %v, want TabHeader", m.activeTab)
	}
}

func TestNew_EmptyToken(t *testing.T) {
	m := newTestModel(t, Options{})

	if m.result != nil {
		t.Error("expected nil result with no initial token")
	}
	if m.errMsg != "" {
		t.Errorf("errMsg = %q, want empty", m.errMsg)
	}
}

func TestNew_InvalidInitialToken(t *testing.T) {
	m := newTestModel(t, Options{Token: "not-a-token"})

	if m.result != nil {
		t.Error("expected nil result for malformed initial token")
	}
	if m.errMsg == "" {
		t.Error("expected errMsg to be set for malformed initial token")
	}
}

func TestUpdate_TickKeepsModeAndRearms(t *testing.T) {
	m := newTestModel(t, Options{})
	m.mode = ModeEditingToken

	_, cmd := m.Update(tickMsg(time.Now()))

	if cmd == nil {
		t.Error("expected tick to re-arm the next tick command")
	}
	if m.mode != ModeEditingToken {
		t.Errorf("tick changed mode to %v", m.mode)
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t, Options{})

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
}

func TestUpdate_ResizeClampsScroll(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"a": 1, "b": 2, "c": 3, "d": 4, "e": 5, "f": 6, "g": 7, "h": 8,
	}, "pw")
	m := newTestModel(t, Options{Token: token})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	m.activeTab = TabPayload

	// Scroll to the bottom, then grow the window; the offset must shrink
	for i := 0; i < 50; i++ {
		m.scrollBy(1)
	}
	before := m.scroll[TabPayload]
	if before == 0 {
		t.Fatal("expected a non-zero scroll offset before resize")
	}

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 100})
	if m.scroll[TabPayload] != 0 {
		t.Errorf("scroll after resize = %d, want 0 (all content visible)", m.scroll[TabPayload])
	}
}

func TestView_EmptyBeforeFirstResize(t *testing.T) {
	m := New(Options{TickRate: 250 * time.Millisecond})

	if got := m.View(); got != "" {
		t.Errorf("View before first WindowSizeMsg = %q, want empty", got)
	}
}

func TestView_ReadsStateOnly(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "view"}, "pw")
	m := newTestModel(t, Options{Token: token, Secret: "pw"})

	before := *m
	_ = m.View()

	if m.mode != before.mode || m.activeTab != before.activeTab || m.scroll != before.scroll {
		t.Error("View mutated model state")
	}
}

func TestTabString(t *testing.T) {
	tests := []struct {
		tab  Tab
		want string
	}{
		{TabHeader, "Header"},
		{TabPayload, "Payload"},
		{TabSecret, "Secret"},
	}
	for _, tt := range tests {
		if got := tt.tab.String(); got != tt.want {
			t.Errorf("Tab(%d).String() = %q, want %q", tt.tab, got, tt.want)
		}
	}
}
