package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/wizard"
)

// rowKind discriminates the rows on the configure-options step.
type rowKind int

const (
	rowOption rowKind = iota
	rowTag
	rowContinue
)

type optionRow struct {
	kind rowKind
	cfg  wizard.OptionConfig
	tag  string
}

// Model drives one wizard session. All domain state lives in the
// embedded wizard.State and changes only through dispatch; everything
// else here is presentation chrome (cursors, text inputs, spinner).
type Model struct {
	ctx  context.Context
	ops  *wizard.Ops
	root string

	state wizard.State

	typeCursor int

	nameInput    textinput.Model
	serviceInput textinput.Model
	inlineErr    string

	optRows   []optionRow
	optCursor int
	editing   bool
	editInput textinput.Model

	availableTags []string

	spin spinner.Model

	width  int
	height int
}

// NewModel builds the initial model. root is the workspace root (the
// directory holding pnpm-workspace.yaml), librariesRoot the directory
// new libraries are created under.
func NewModel(ctx context.Context, ops *wizard.Ops, root, librariesRoot string) Model {
	name := textinput.New()
	name.Placeholder = "my-library"
	name.CharLimit = 64

	service := textinput.New()
	service.Placeholder = "stripe"
	service.CharLimit = 64

	edit := textinput.New()
	edit.CharLimit = 128

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	return Model{
		ctx:          ctx,
		ops:          ops,
		root:         root,
		state:        wizard.NewState(librariesRoot),
		nameInput:    name,
		serviceInput: service,
		editInput:    edit,
		spin:         sp,
	}
}

// State exposes the current wizard state for callers of RunWizard.
func (m Model) State() wizard.State { return m.state }

func (m *Model) dispatch(a wizard.Action) {
	m.state = wizard.Reduce(m.state, a)
}

// Init starts the background tag scan and the cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadTags(), textinput.Blink)
}

func (m Model) loadTags() tea.Cmd {
	ctx, ops := m.ctx, m.ops
	return func() tea.Msg {
		return tagsLoadedMsg{tags: ops.Tags.ScanTags(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tagsLoadedMsg:
		m.availableTags = msg.tags
		if m.state.CurrentStep == wizard.StepConfigureOptions {
			m.optRows = m.buildOptionRows()
		}
		return m, nil

	case fileWrittenMsg:
		m.dispatch(wizard.AddGeneratedFile{Path: msg.path})
		return m, waitForFile(msg.files, msg.done)

	case genDoneMsg:
		m.dispatch(wizard.GenerationComplete{})
		return m, nil

	case genFailMsg:
		m.dispatch(wizard.GenerationError{Message: msg.err.Error()})
		return m, nil

	case spinner.TickMsg:
		if m.state.GenerationStatus == wizard.GenerationRunning {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state.CurrentStep {
	case wizard.StepSelectType:
		return m.updateSelectType(msg)
	case wizard.StepEnterName:
		return m.updateEnterName(msg)
	case wizard.StepEnterExternalService:
		return m.updateEnterService(msg)
	case wizard.StepConfigureOptions:
		return m.updateConfigureOptions(msg)
	case wizard.StepPreview:
		return m.updatePreview(msg)
	case wizard.StepConfirm:
		return m.updateConfirm(msg)
	case wizard.StepGenerating:
		// Generation is cancel-only; the context wired into the
		// program handles ctrl+c.
		return m, nil
	case wizard.StepComplete, wizard.StepError:
		return m.updateTerminal(msg)
	}
	return m, nil
}

// advance recomputes the file plan when the next step is the preview,
// then moves forward. Every entry into the preview step goes through
// here, so the plan always reflects the latest selections.
func (m *Model) advance() tea.Cmd {
	next := wizard.NextStep(m.state)
	if next == wizard.StepPreview {
		var plan []wizard.FilePreview
		if m.state.Selection == wizard.SelectInit {
			plan = m.ops.Preview.InitFilePlan()
		} else {
			plan = m.ops.Preview.FilePlan(m.state.LibraryType, m.state.LibraryName, m.state.Options)
		}
		m.dispatch(wizard.SetFilesToCreate{Files: plan})
	}
	m.dispatch(wizard.Next{})
	return m.enterStep()
}

// enterStep prepares presentation state for the step just entered.
func (m *Model) enterStep() tea.Cmd {
	m.inlineErr = ""
	switch m.state.CurrentStep {
	case wizard.StepEnterName:
		m.nameInput.SetValue(m.state.LibraryName)
		m.serviceInput.Blur()
		return m.nameInput.Focus()
	case wizard.StepEnterExternalService:
		m.serviceInput.SetValue(m.state.ExternalService)
		m.serviceInput.Placeholder = m.state.LibraryName
		m.nameInput.Blur()
		return m.serviceInput.Focus()
	case wizard.StepConfigureOptions:
		m.nameInput.Blur()
		m.serviceInput.Blur()
		m.optRows = m.buildOptionRows()
		if m.optCursor >= len(m.optRows) {
			m.optCursor = 0
		}
		return nil
	}
	return nil
}

func (m *Model) retreat() tea.Cmd {
	m.editing = false
	m.dispatch(wizard.Prev{})
	return m.enterStep()
}

func (m Model) updateSelectType(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	choices := wizard.Selections()
	switch msg.String() {
	case "up", "k":
		if m.typeCursor > 0 {
			m.typeCursor--
		}
	case "down", "j":
		if m.typeCursor < len(choices)-1 {
			m.typeCursor++
		}
	case "enter":
		m.dispatch(wizard.SetSelection{Selection: choices[m.typeCursor]})
		return m, m.advance()
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateEnterName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		res := m.ops.Validation.ValidateName(m.nameInput.Value())
		if !res.IsValid {
			m.inlineErr = res.Error
			return m, nil
		}
		m.dispatch(wizard.SetLibraryName{Name: m.nameInput.Value()})
		return m, m.advance()
	case "esc":
		return m, m.retreat()
	}
	m.inlineErr = ""
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) updateEnterService(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := m.serviceInput.Value()
		if value == "" {
			// Blank falls back to the library name downstream, so an
			// empty submit is allowed here.
			m.dispatch(wizard.SetExternalService{Service: ""})
			return m, m.advance()
		}
		res := m.ops.Validation.ValidateExternalService(value)
		if !res.IsValid {
			m.inlineErr = res.Error
			return m, nil
		}
		m.dispatch(wizard.SetExternalService{Service: value})
		return m, m.advance()
	case "esc":
		return m, m.retreat()
	}
	m.inlineErr = ""
	var cmd tea.Cmd
	m.serviceInput, cmd = m.serviceInput.Update(msg)
	return m, cmd
}

func (m Model) buildOptionRows() []optionRow {
	rows := []optionRow{{kind: rowOption, cfg: wizard.OptionConfig{
		Kind:        wizard.OptionText,
		Key:         wizard.KeyDescription,
		Label:       "Description",
		Placeholder: "What this library does",
	}}}
	for _, cfg := range m.ops.Catalog.ForType(m.state.LibraryType) {
		rows = append(rows, optionRow{kind: rowOption, cfg: cfg})
	}
	for _, tag := range m.availableTags {
		rows = append(rows, optionRow{kind: rowTag, tag: tag})
	}
	return append(rows, optionRow{kind: rowContinue})
}

func (m Model) updateConfigureOptions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			m.commitEdit()
			return m, nil
		case "esc":
			m.editing = false
			return m, nil
		}
		var cmd tea.Cmd
		m.editInput, cmd = m.editInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.optCursor > 0 {
			m.optCursor--
		}
	case "down", "j":
		if m.optCursor < len(m.optRows)-1 {
			m.optCursor++
		}
	case "left", "h":
		m.cycleSelect(-1)
	case "right", "l":
		m.cycleSelect(1)
	case " ", "space":
		m.toggleRow()
	case "enter":
		row := m.optRows[m.optCursor]
		if row.kind == rowContinue {
			return m, m.advance()
		}
		if row.kind == rowOption && row.cfg.Kind == wizard.OptionText {
			m.startEdit(row.cfg)
			return m, textinput.Blink
		}
		m.toggleRow()
	case "esc":
		return m, m.retreat()
	}
	return m, nil
}

func (m *Model) startEdit(cfg wizard.OptionConfig) {
	m.editing = true
	m.editInput.Placeholder = cfg.Placeholder
	switch cfg.Key {
	case wizard.KeyDescription:
		m.editInput.SetValue(m.state.Options.Description)
	case wizard.KeyScope:
		if m.state.Options.Scope != nil {
			m.editInput.SetValue(*m.state.Options.Scope)
		} else {
			m.editInput.SetValue("")
		}
	}
	m.editInput.Focus()
}

func (m *Model) commitEdit() {
	opts := m.state.Options
	value := m.editInput.Value()
	switch m.optRows[m.optCursor].cfg.Key {
	case wizard.KeyDescription:
		opts.Description = value
	case wizard.KeyScope:
		if value == "" {
			opts.Scope = nil
		} else {
			opts.Scope = &value
		}
	}
	m.editing = false
	m.editInput.Blur()
	m.dispatch(wizard.SetOptions{Options: opts})
}

func (m *Model) toggleRow() {
	row := m.optRows[m.optCursor]
	opts := m.state.Options
	switch row.kind {
	case rowTag:
		opts.SelectedTags = toggleTag(opts.SelectedTags, row.tag, m.availableTags)
	case rowOption:
		switch row.cfg.Key {
		case wizard.KeyIncludeCQRS:
			opts.IncludeCQRS = toggleBool(opts.IncludeCQRS)
		case wizard.KeyIncludeClientServer:
			opts.IncludeClientServer = toggleBool(opts.IncludeClientServer)
		default:
			return
		}
	default:
		return
	}
	m.dispatch(wizard.SetOptions{Options: opts})
}

func (m *Model) cycleSelect(dir int) {
	row := m.optRows[m.optCursor]
	if row.kind != rowOption || row.cfg.Kind != wizard.OptionSelect {
		return
	}
	opts := m.state.Options
	choices := row.cfg.Choices
	if len(choices) == 0 {
		return
	}
	var current *string
	switch row.cfg.Key {
	case wizard.KeyPlatform:
		current = opts.Platform
	default:
		return
	}
	idx := 0
	if current != nil {
		for i, c := range choices {
			if c == *current {
				idx = (i + dir + len(choices)) % len(choices)
				break
			}
		}
	} else if dir < 0 {
		idx = len(choices) - 1
	}
	choice := choices[idx]
	opts.Platform = &choice
	m.dispatch(wizard.SetOptions{Options: opts})
}

// toggleBool walks unset -> true -> false -> true, so a value only ever
// becomes explicit once the user touches it.
func toggleBool(v *bool) *bool {
	next := v == nil || !*v
	return &next
}

// toggleTag adds or removes tag, keeping the selection in catalog order.
func toggleTag(selected []string, tag string, available []string) []string {
	seen := make(map[string]bool, len(selected)+1)
	for _, t := range selected {
		seen[t] = true
	}
	if seen[tag] {
		delete(seen, tag)
	} else {
		seen[tag] = true
	}
	var out []string
	for _, t := range available {
		if seen[t] {
			out = append(out, t)
			delete(seen, t)
		}
	}
	// Tags typed before the scan finished keep their place at the end.
	for _, t := range selected {
		if seen[t] {
			out = append(out, t)
		}
	}
	return out
}

func (m Model) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m, m.advance()
	case "esc":
		return m, m.retreat()
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "y":
		m.dispatch(wizard.StartGeneration{})
		return m, tea.Batch(m.spin.Tick, m.startGeneration())
	case "esc", "n":
		return m, m.retreat()
	}
	return m, nil
}

// startGeneration runs the dispatcher on a goroutine and bridges its
// ordered file callbacks into messages.
func (m Model) startGeneration() tea.Cmd {
	files := make(chan string, 16)
	done := make(chan genOutcome, 1)

	ctx, ops, root := m.ctx, m.ops, m.root
	res := m.state.Result()
	isInit := m.state.Selection == wizard.SelectInit

	go func() {
		onFile := func(path string) { files <- path }
		var err error
		if isInit {
			err = ops.Init.InitWorkspace(ctx, root, onFile)
		} else {
			_, err = ops.Generation.Execute(ctx, res, onFile)
		}
		close(files)
		done <- genOutcome{err: err}
	}()

	return waitForFile(files, done)
}

// waitForFile blocks for the next generated file, re-arming itself via
// the channels carried in the message until the run finishes.
func waitForFile(files <-chan string, done <-chan genOutcome) tea.Cmd {
	return func() tea.Msg {
		if path, ok := <-files; ok {
			return fileWrittenMsg{path: path, files: files, done: done}
		}
		out := <-done
		if out.err != nil {
			return genFailMsg{err: out.err}
		}
		return genDoneMsg{}
	}
}

func (m Model) updateTerminal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "q", "esc":
		return m, tea.Quit
	case "r":
		m.dispatch(wizard.Reset{})
		m.typeCursor = 0
		m.optCursor = 0
		m.editing = false
		m.inlineErr = ""
		m.nameInput.SetValue("")
		m.serviceInput.SetValue("")
		return m, nil
	}
	return m, nil
}
