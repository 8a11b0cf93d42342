// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/prompt"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/service"
	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

type screen int

const (
	screenMenu screen = iota
	screenForm
	screenRun
	screenList
	screenDetail
	screenModels
)

var menuItems = []string{
	"New prompt run",
	"Example library",
	"Model catalog",
}

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	version  string

	screen  screen
	menuIdx int

	titleInput  textinput.Model
	contentArea textarea.Model
	formFocus   int
	formErr     string

	running     bool
	runTitle    string
	runResponse string
	runTokens   int
	runElapsed  time.Duration
	runErr      string
	runCh       chan tea.Msg

	examples    []models.Example
	listIdx     int
	listLoading bool
	searchInput textinput.Model
	searching   bool
	listFilter  string

	modelsList    models.ModelList
	modelsIdx     int
	modelsLoading bool

	spinner spinner.Model
	status  string
	errMsg  string
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, version string) mainLoopModel {
	title := textinput.New()
	title.Placeholder = prompt.DefaultTitle
	title.CharLimit = 120
	title.Focus()

	content := textarea.New()
	content.Placeholder = prompt.DefaultContent
	content.SetHeight(5)

	search := textinput.New()
	search.Placeholder = "title contains..."
	search.CharLimit = 64

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:         ctx,
		services:    services,
		version:     version,
		titleInput:  title,
		contentArea: content,
		searchInput: search,
		spinner:     s,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return textinput.Blink
}

// ── commands ─────────────────────────────────────────────────────────────────

// startRun launches the completion in a goroutine and returns a command that
// waits for its first event. Tokens and the final result arrive on runCh.
func (m *mainLoopModel) startRun(title string, fragments []string) tea.Cmd {
	ch := make(chan tea.Msg, 64)
	m.runCh = ch

	go func(ctx context.Context, completions service.ClientCompletionService) {
		example, err := completions.Complete(ctx, title, fragments, func(tok models.StreamToken) {
			ch <- runTokenMsg{token: tok}
		})
		ch <- runDoneMsg{example: example, err: err}
		close(ch)
	}(m.ctx, m.services.CompletionService)

	return tea.Batch(waitForRun(ch), m.spinner.Tick)
}

func waitForRun(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func (m mainLoopModel) cmdLoadExamples() tea.Cmd {
	filter := models.ExampleFilter{TitleLike: m.listFilter}
	return func() tea.Msg {
		examples, err := m.services.ExampleService.List(m.ctx, filter)
		return examplesLoadedMsg{examples: examples, err: err}
	}
}

func (m mainLoopModel) cmdDeleteExample(exampleID string) tea.Cmd {
	return func() tea.Msg {
		return exampleDeletedMsg{err: m.services.ExampleService.Delete(m.ctx, exampleID)}
	}
}

func (m mainLoopModel) cmdLoadModels() tea.Cmd {
	return func() tea.Msg {
		list, err := m.services.ModelService.List(m.ctx)
		return modelsLoadedMsg{list: list, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func cmdClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// ── update ───────────────────────────────────────────────────────────────────

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runTokenMsg:
		m.runResponse += msg.token.Content
		m.runTokens++
		m.runElapsed = msg.token.Elapsed
		return m, waitForRun(m.runCh)

	case runDoneMsg:
		m.running = false
		if msg.err != nil {
			m.runErr = msg.err.Error()
			return m, nil
		}
		m.runErr = ""
		m.runTokens = msg.example.TokenCount
		m.runElapsed = msg.example.Elapsed
		m.status = "Run saved to the example library"
		return m, cmdClearStatusAfter(3 * time.Second)

	case examplesLoadedMsg:
		m.listLoading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.examples = msg.examples
		if m.listIdx >= len(m.examples) {
			m.listIdx = len(m.examples) - 1
		}
		if m.listIdx < 0 {
			m.listIdx = 0
		}
		return m, nil

	case exampleDeletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.status = "Example deleted"
		m.errMsg = ""
		m.screen = screenList
		m.listLoading = true
		return m, tea.Batch(m.cmdLoadExamples(), cmdClearStatusAfter(3*time.Second))

	case modelsLoadedMsg:
		m.modelsLoading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.modelsList = msg.list
		if m.modelsIdx >= len(m.modelsList.Data) {
			m.modelsIdx = len(m.modelsList.Data) - 1
		}
		if m.modelsIdx < 0 {
			m.modelsIdx = 0
		}
		return m, nil

	case copiedMsg:
		m.status = "Copied to clipboard"
		return m, cmdClearStatusAfter(2 * time.Second)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.running && !m.listLoading && !m.modelsLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenMenu:
		return m.handleMenuKey(msg)
	case screenForm:
		return m.handleFormKey(msg)
	case screenRun:
		return m.handleRunKey(msg)
	case screenList:
		return m.handleListKey(msg)
	case screenDetail:
		return m.handleDetailKey(msg)
	case screenModels:
		return m.handleModelsKey(msg)
	}
	return m, nil
}

func (m mainLoopModel) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case key.Matches(msg, keys.down):
		if m.menuIdx < len(menuItems)-1 {
			m.menuIdx++
		}
	case key.Matches(msg, keys.enter):
		switch m.menuIdx {
		case 0:
			m.screen = screenForm
			m.formFocus = 0
			m.formErr = ""
			m.titleInput.Focus()
			m.contentArea.Blur()
			return m, textinput.Blink
		case 1:
			m.screen = screenList
			m.listLoading = true
			return m, tea.Batch(m.cmdLoadExamples(), m.spinner.Tick)
		case 2:
			m.screen = screenModels
			m.modelsLoading = true
			return m, tea.Batch(m.cmdLoadModels(), m.spinner.Tick)
		}
	}
	return m, nil
}

func (m mainLoopModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenMenu
		return m, nil
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		if m.formFocus == 0 {
			m.formFocus = 1
			m.titleInput.Blur()
			return m, m.contentArea.Focus()
		}
		m.formFocus = 0
		m.contentArea.Blur()
		m.titleInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.enter):
		// enter moves on from the title field; in the textarea it is a
		// newline and ctrl+s submits instead.
		if m.formFocus == 0 {
			m.formFocus = 1
			m.titleInput.Blur()
			return m, m.contentArea.Focus()
		}
	case key.Matches(msg, keys.submit):
		return m.submitForm()
	}
	return m.updateInputs(msg)
}

func (m mainLoopModel) submitForm() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.titleInput.Value())
	content := strings.TrimSpace(m.contentArea.Value())

	if title == "" {
		m.formErr = "title must not be empty"
		return m, nil
	}
	if content == "" {
		m.formErr = "prompt must not be empty"
		return m, nil
	}

	m.formErr = ""
	m.screen = screenRun
	m.running = true
	m.runTitle = title
	m.runResponse = ""
	m.runTokens = 0
	m.runElapsed = 0
	m.runErr = ""

	// startRun stores the token channel on m, so it must run before m is
	// copied into the return value.
	cmd := m.startRun(title, []string{content})
	return m, cmd
}

func (m mainLoopModel) handleRunKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.running {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.screen = screenMenu
		return m, nil
	case key.Matches(msg, keys.copy):
		if m.runResponse != "" {
			return m, cmdCopy(m.runResponse)
		}
	case key.Matches(msg, keys.newRun):
		m.screen = screenForm
		m.titleInput.SetValue("")
		m.contentArea.SetValue("")
		m.formFocus = 0
		m.titleInput.Focus()
		m.contentArea.Blur()
		return m, textinput.Blink
	}
	return m, nil
}

func (m mainLoopModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch {
		case key.Matches(msg, keys.enter):
			m.searching = false
			m.listFilter = strings.TrimSpace(m.searchInput.Value())
			m.searchInput.Blur()
			m.listLoading = true
			return m, tea.Batch(m.cmdLoadExamples(), m.spinner.Tick)
		case key.Matches(msg, keys.esc):
			m.searching = false
			m.listFilter = ""
			m.searchInput.SetValue("")
			m.searchInput.Blur()
			m.listLoading = true
			return m, tea.Batch(m.cmdLoadExamples(), m.spinner.Tick)
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.screen = screenMenu
		return m, nil
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.searchInput.Focus()
	case key.Matches(msg, keys.up):
		if m.listIdx > 0 {
			m.listIdx--
		}
	case key.Matches(msg, keys.down):
		if m.listIdx < len(m.examples)-1 {
			m.listIdx++
		}
	case key.Matches(msg, keys.refresh):
		m.listLoading = true
		return m, tea.Batch(m.cmdLoadExamples(), m.spinner.Tick)
	case key.Matches(msg, keys.enter):
		if len(m.examples) > 0 {
			m.screen = screenDetail
		}
	case key.Matches(msg, keys.delete):
		if example, ok := m.currentExample(); ok {
			return m, m.cmdDeleteExample(example.ExampleID)
		}
	}
	return m, nil
}

func (m mainLoopModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.screen = screenList
		return m, nil
	case key.Matches(msg, keys.copy):
		if example, ok := m.currentExample(); ok {
			return m, cmdCopy(example.Response)
		}
	case key.Matches(msg, keys.replay):
		if example, ok := m.currentExample(); ok {
			return m.replayExample(example)
		}
	case key.Matches(msg, keys.delete):
		if example, ok := m.currentExample(); ok {
			return m, m.cmdDeleteExample(example.ExampleID)
		}
	}
	return m, nil
}

// replayExample feeds a saved example back through the completion service,
// reusing the run screen for the fresh stream.
func (m mainLoopModel) replayExample(example models.Example) (tea.Model, tea.Cmd) {
	m.screen = screenRun
	m.running = true
	m.runTitle = example.Title
	m.runResponse = ""
	m.runTokens = 0
	m.runElapsed = 0
	m.runErr = ""

	// startRun stores the token channel on m, so it must run before m is
	// copied into the return value.
	cmd := m.startRun(example.Title, []string{example.Prompt})
	return m, cmd
}

func (m mainLoopModel) handleModelsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.screen = screenMenu
		return m, nil
	case key.Matches(msg, keys.up):
		if m.modelsIdx > 0 {
			m.modelsIdx--
		}
	case key.Matches(msg, keys.down):
		if m.modelsIdx < len(m.modelsList.Data)-1 {
			m.modelsIdx++
		}
	case key.Matches(msg, keys.enter):
		if name, ok := m.currentModel(); ok {
			m.services.CompletionService.UseModel(name)
			m.status = "Model selected: " + name
			return m, cmdClearStatusAfter(3 * time.Second)
		}
	case key.Matches(msg, keys.refresh):
		m.modelsLoading = true
		return m, tea.Batch(m.cmdLoadModels(), m.spinner.Tick)
	}
	return m, nil
}

func (m mainLoopModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.screen != screenForm {
		return m, nil
	}

	var cmd tea.Cmd
	if m.formFocus == 0 {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.contentArea, cmd = m.contentArea.Update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) currentExample() (models.Example, bool) {
	if len(m.examples) == 0 || m.listIdx < 0 || m.listIdx >= len(m.examples) {
		return models.Example{}, false
	}
	return m.examples[m.listIdx], true
}

func (m mainLoopModel) currentModel() (string, bool) {
	if len(m.modelsList.Data) == 0 || m.modelsIdx < 0 || m.modelsIdx >= len(m.modelsList.Data) {
		return "", false
	}
	return m.modelsList.Data[m.modelsIdx].ID, true
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenMenu:
		return m.viewMenu()
	case screenForm:
		return m.viewForm()
	case screenRun:
		return m.viewRun()
	case screenList:
		return m.viewList()
	case screenDetail:
		return m.viewDetail()
	case screenModels:
		return m.viewModels()
	}
	return ""
}

func (m mainLoopModel) viewMenu() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("OK: " + m.status + "\n\n")
	}

	for i, item := range menuItems {
		cursor := " "
		if i == m.menuIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, item))
	}

	title := "YOUR AI LAB"
	if m.version != "" {
		title += "  " + helpStyle.Render("v"+m.version)
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ q: quit")
}

func (m mainLoopModel) viewForm() string {
	var b strings.Builder

	b.WriteString("Title\n")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n\nPrompt\n")
	b.WriteString(m.contentArea.View())

	if m.formErr != "" {
		b.WriteString("\n\n" + errorStyle.Render("Error: "+m.formErr))
	}

	return renderPage("NEW PROMPT RUN", b.String(), "tab: switch field │ ctrl+s: run │ esc: back")
}

func (m mainLoopModel) viewRun() string {
	var b strings.Builder

	if m.running {
		b.WriteString(m.spinner.View() + " streaming...\n\n")
	}

	if m.runResponse != "" {
		b.WriteString(streamStyle.Render(m.runResponse))
		b.WriteString("\n")
	}

	if m.runErr != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.runErr) + "\n")
	}

	if !m.running && m.runErr == "" {
		b.WriteString(fmt.Sprintf("\n%d tokens in %.2fs\n", m.runTokens, m.runElapsed.Seconds()))
	}
	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}

	hotKeys := ""
	if !m.running {
		hotKeys = "c: copy response │ n: new run │ esc: back"
	}
	return renderPage(m.runTitle, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	if m.searching {
		b.WriteString("Search: " + m.searchInput.View() + "\n\n")
	} else if m.listFilter != "" {
		b.WriteString(helpStyle.Render("filter: "+m.listFilter) + "\n\n")
	}

	switch {
	case m.listLoading:
		b.WriteString(m.spinner.View() + " loading...\n")
	case len(m.examples) == 0:
		b.WriteString("No saved examples yet\n")
	default:
		for i, example := range m.examples {
			cursor := "  "
			if i == m.listIdx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s  %s  %s\n",
				cursor,
				fitText(example.Title, 32),
				helpStyle.Render(example.Model),
				helpStyle.Render(example.CreatedAt.Local().Format("2006-01-02 15:04")),
			))
		}
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	hotKeys := "enter: open │ /: search │ d: delete │ r: reload │ esc: back"
	if m.searching {
		hotKeys = "enter: apply filter │ esc: clear"
	}
	return renderPage("EXAMPLE LIBRARY", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) viewDetail() string {
	example, ok := m.currentExample()
	if !ok {
		return renderPage("EXAMPLE", "", "esc: back")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Model:    %s\n", example.Model))
	b.WriteString(fmt.Sprintf("Saved:    %s\n", example.CreatedAt.Local().Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("Metrics:  %d tokens in %.2fs\n\n", example.TokenCount, example.Elapsed.Seconds()))
	b.WriteString("Prompt\n")
	b.WriteString(streamStyle.Render(example.Prompt))
	b.WriteString("\n\nResponse\n")
	b.WriteString(streamStyle.Render(example.Response))

	if m.status != "" {
		b.WriteString("\n\nOK: " + m.status)
	}

	return renderPage(example.Title, b.String(), "p: replay │ c: copy response │ d: delete │ esc: back")
}

func (m mainLoopModel) viewModels() string {
	var b strings.Builder

	switch {
	case m.modelsLoading:
		b.WriteString(m.spinner.View() + " loading...\n")
	case len(m.modelsList.Data) == 0:
		b.WriteString("No models reported by the server\n")
	default:
		active := m.services.CompletionService.Model()
		for i, name := range m.modelsList.Names() {
			cursor := "  "
			if i == m.modelsIdx {
				cursor = "> "
			}
			line := cursor + name
			if name == active {
				line += "  " + helpStyle.Render("(active)")
			}
			b.WriteString(line + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage("MODEL CATALOG", strings.TrimRight(b.String(), "\n"),
		"enter: use model │ ↑/↓: navigate │ r: reload │ esc: back")
}
