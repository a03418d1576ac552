package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexstar/internal/config"
	"github.com/vovakirdan/hexstar/internal/core"
)

// ScatterSelection holds the user's choice from the scatter pre-game menu.
type ScatterSelection struct {
	Preset config.ObstaclePreset
}

// ScatterMenuModel lets users pick an obstacle density before a scatter game.
type ScatterMenuModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection ScatterSelection
	choosing  bool
	quitting  bool
	back      bool
}

var scatterPresets = []struct {
	preset config.ObstaclePreset
	label  string
}{
	{config.ObstaclesSparse, "Sparse"},
	{config.ObstaclesNormal, "Normal"},
	{config.ObstaclesDense, "Dense"},
}

// NewScatterMenuModel creates a new scatter preset selection model.
func NewScatterMenuModel(width, height int) ScatterMenuModel {
	return ScatterMenuModel{
		cursor:    1, // Normal
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m ScatterMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ScatterMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m ScatterMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(scatterPresets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = ScatterSelection{Preset: scatterPresets[m.cursor].preset}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the preset selection.
func (m ScatterMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S C A T T E R", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Obstacle density:", m.width))
	b.WriteString("\n\n")

	for i, p := range scatterPresets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		density := config.DensityForPreset(p.preset)
		line := fmt.Sprintf("%s%s (%.0f%%)", cursor, p.label, density*100)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m ScatterMenuModel) Selected() *ScatterSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m ScatterMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ScatterMenuModel) WantsBack() bool {
	return m.back
}

// RunScatterMenu runs the scatter preset selection and returns the selection,
// or nil when the user backed out.
func RunScatterMenu(cfg core.RuntimeConfig) (*ScatterSelection, error) {
	model := NewScatterMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(ScatterMenuModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
