package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"docrag/internal/domain"
	"docrag/internal/tokenizer"
)

// RetrieverPort is the TUI-facing subset of the retrieval engine.
type RetrieverPort interface {
	Search(query string, topK int) []domain.SearchResult
	RelevantContext(query string, maxChars int) (string, bool)
	Stats() string
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service     RetrieverPort
	input       textinput.Model
	viewport    viewport.Model
	results     []domain.SearchResult
	context     string
	showContext bool
	summary     string
	status      string
	cursor      int
	ready       bool
	topK        int
	maxChars    int
}

// New creates a new TUI model instance.
func New(service RetrieverPort, summary string, topK, maxChars int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about the document and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		service:  service,
		input:    ti,
		viewport: vp,
		summary:  summary,
		status:   service.Stats() + ". Type to search, tab toggles context view.",
		topK:     topK,
		maxChars: maxChars,
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around result and query boxes
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		totalHeaderLines := 2                                    // header + summary
		totalFooterLines := 1                                    // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1 // 1 spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.render())
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				m.runQuery(q)
				m.viewport.SetContent(m.render())
				return m, nil
			}
		case "tab":
			m.showContext = !m.showContext
			m.viewport.SetContent(m.render())
			m.viewport.GotoTop()
			return m, nil
		case "down":
			if len(m.results) > 0 && !m.showContext {
				m.cursor = (m.cursor + 1) % len(m.results)
				m.viewport.SetContent(m.render())
				return m, nil
			}
		case "up":
			if len(m.results) > 0 && !m.showContext {
				m.cursor = (m.cursor - 1 + len(m.results)) % len(m.results)
				m.viewport.SetContent(m.render())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) runQuery(q string) {
	ctx, ok := m.service.RelevantContext(q, m.maxChars)
	if !ok {
		m.status = "No document indexed"
		m.results = nil
		m.context = ""
		return
	}
	m.results = m.service.Search(q, m.topK)
	m.context = ctx
	m.cursor = 0
	if len(m.results) == 0 {
		m.status = fmt.Sprintf("No match for %q, showing document overview", q)
		m.showContext = true
		return
	}
	m.status = fmt.Sprintf("%d sections for %q (confidence %.2f)", len(m.results), q, m.results[0].Confidence)
}

// View renders the TUI layout and current result.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Document Context Search")
	summary := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.summary)
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	results := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + summary + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) render() string {
	if m.showContext {
		if m.context == "" {
			return "No context yet."
		}
		return m.context
	}
	return m.renderCurrentResult()
}

func (m Model) renderCurrentResult() string {
	if len(m.results) == 0 {
		return "No results yet."
	}
	r := m.results[m.cursor]
	title := fmt.Sprintf("Section %d/%d  lines %d-%d  score=%.3f  confidence=%.2f",
		m.cursor+1, len(m.results), r.Chunk.StartLine+1, r.Chunk.EndLine+1, r.Score, r.Confidence)
	matched := matchedStyle.Render("matched: " + strings.Join(r.MatchedKeywords, ", "))
	body := highlightBestLine(r.Chunk.Text, r.MatchedKeywords)
	return title + "\n" + matched + "\n\n" + body
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	matchedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// highlightBestLine renders the line sharing the most keywords with the
// match in the highlight style.
func highlightBestLine(text string, keywords []string) string {
	if strings.TrimSpace(text) == "" || len(keywords) == 0 {
		return text
	}
	kw := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		kw[k] = struct{}{}
	}
	lines := strings.Split(text, "\n")
	bestIdx := -1
	bestScore := 0
	for i, l := range lines {
		if score := keywordOverlap(kw, l); score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx >= 0 {
		lines[bestIdx] = highlightStyle.Render(lines[bestIdx])
	}
	return strings.Join(lines, "\n")
}

func keywordOverlap(keywords map[string]struct{}, line string) int {
	score := 0
	seen := make(map[string]struct{})
	for _, t := range tokenizer.Tokenize(line) {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := keywords[t]; ok {
			score++
		}
	}
	return score
}
