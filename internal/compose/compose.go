// Package compose collects a post interactively: multi-line text entry
// followed by media and reply prompts. It only gathers input; all analysis
// happens in the scoring engine.
package compose

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pthm/postcheck/internal/scoring"
)

// ErrAborted is returned when the user cancels composition
var ErrAborted = errors.New("composition aborted")

type stage int

const (
	stageText stage = iota
	stageMedia
	stageMediaType
	stageReply
	stageDone
)

// Model is the Bubbletea model for interactive post composition
type Model struct {
	stage    stage
	textarea textarea.Model
	input    textinput.Model
	post     scoring.Post
	aborted  bool

	promptStyle lipgloss.Style
	hintStyle   lipgloss.Style
}

// NewModel creates a new composition model
func NewModel() Model {
	ta := textarea.New()
	ta.Placeholder = "What's happening?"
	ta.ShowLineNumbers = false
	ta.Focus()

	ti := textinput.New()
	ti.CharLimit = 16

	return Model{
		stage:       stageText,
		textarea:    ta,
		input:       ti,
		promptStyle: lipgloss.NewStyle().Bold(true),
		hintStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and advances the composition stages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			if done := m.advance(); done {
				return m, tea.Quit
			}
			if m.stage != stageText {
				// prompt stages consume the enter key themselves
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.stage == stageText {
		m.textarea, cmd = m.textarea.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// advance moves to the next stage when the current one is complete.
// Returns true when composition is finished.
func (m *Model) advance() bool {
	switch m.stage {
	case stageText:
		// Text entry ends with a blank line after prior content.
		value := m.textarea.Value()
		lines := strings.Split(value, "\n")
		if strings.TrimSpace(value) == "" || lines[len(lines)-1] != "" {
			return false
		}
		m.post.Text = strings.TrimRight(value, "\n")
		m.stage = stageMedia
		m.input.Focus()
	case stageMedia:
		m.post.HasMedia = isYes(m.input.Value())
		m.input.Reset()
		if m.post.HasMedia {
			m.stage = stageMediaType
		} else {
			m.stage = stageReply
		}
	case stageMediaType:
		m.post.MediaType = normalizeMediaType(m.input.Value())
		m.input.Reset()
		m.stage = stageReply
	case stageReply:
		m.post.IsReply = isYes(m.input.Value())
		m.stage = stageDone
		return true
	}
	return false
}

// View renders the current stage
func (m Model) View() string {
	if m.stage == stageDone || m.aborted {
		return ""
	}

	var b strings.Builder
	switch m.stage {
	case stageText:
		b.WriteString(m.promptStyle.Render("Enter your post text"))
		b.WriteString("\n")
		b.WriteString(m.hintStyle.Render("(finish with a blank line)"))
		b.WriteString("\n\n")
		b.WriteString(m.textarea.View())
	case stageMedia:
		b.WriteString(m.promptStyle.Render("Does this post have media? (y/n) "))
		b.WriteString(m.input.View())
	case stageMediaType:
		b.WriteString(m.promptStyle.Render("Media type (image/video/gif) "))
		b.WriteString(m.input.View())
	case stageReply:
		b.WriteString(m.promptStyle.Render("Is this a reply? (y/n) "))
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")
	return b.String()
}

// Post returns the composed post
func (m Model) Post() scoring.Post {
	return m.post
}

// Aborted returns whether the user cancelled composition
func (m Model) Aborted() bool {
	return m.aborted
}

// Run starts the interactive composition flow and returns the composed post
func Run() (scoring.Post, error) {
	program := tea.NewProgram(NewModel())
	final, err := program.Run()
	if err != nil {
		return scoring.Post{}, err
	}

	model, ok := final.(Model)
	if !ok || model.Aborted() {
		return scoring.Post{}, ErrAborted
	}
	return model.Post(), nil
}

func isYes(answer string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y")
}

// normalizeMediaType falls back to "image" for unrecognized values
func normalizeMediaType(value string) string {
	mediaType := strings.ToLower(strings.TrimSpace(value))
	switch mediaType {
	case "image", "video", "gif":
		return mediaType
	default:
		return "image"
	}
}
