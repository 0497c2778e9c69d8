package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ABI sources offered by the wizard.
const (
	SourceFile     = "file"
	SourceExplorer = "explorer"
	SourceBuiltin  = "builtin"
)

// WizardOptions seeds the wizard's menus and defaults.
type WizardOptions struct {
	Chains          []string // registry slugs; the first is preselected
	Builtins        []string // builtin ABI ids
	Languages       []string
	ClassName       string
	PackageName     string
	ValidateAddr    func(string) (string, error)
	ValidateName    func(string) error
	ValidatePackage func(string) error
}

// WizardResult holds answers collected by the SDK wizard.
type WizardResult struct {
	Chain       string
	Address     string
	Source      string // SourceFile | SourceExplorer | SourceBuiltin
	ABIPath     string
	Builtin     string
	Languages   []string
	ClassName   string
	PackageName string
}

// --- Bubble Tea model ---

type wizardStep int

const (
	stepChain wizardStep = iota
	stepAddress
	stepSource
	stepABIPath
	stepBuiltin
	stepLanguages
	stepClass
	stepPackage
	stepDone
)

var sourceLabels = []string{
	"ABI / artifact file",
	"Fetch verified ABI from explorer",
	"Built-in standard ABI",
}

var sourceValues = []string{SourceFile, SourceExplorer, SourceBuiltin}

type wizardModel struct {
	opts     WizardOptions
	step     wizardStep
	result   WizardResult
	cursor   int
	checked  map[int]bool
	input    string
	err      string
	canceled bool
}

func newWizard(opts WizardOptions) wizardModel {
	return wizardModel{
		opts:    opts,
		step:    stepChain,
		checked: map[int]bool{0: true},
	}
}

func (m wizardModel) Init() tea.Cmd { return nil }

// choices returns the menu for list steps, nil for text steps.
func (m wizardModel) choices() []string {
	switch m.step {
	case stepChain:
		return m.opts.Chains
	case stepSource:
		return sourceLabels
	case stepBuiltin:
		return m.opts.Builtins
	case stepLanguages:
		return m.opts.Languages
	}
	return nil
}

func (m wizardModel) inputMode() bool {
	switch m.step {
	case stepAddress, stepABIPath, stepClass, stepPackage:
		return true
	}
	return false
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.canceled = true
		return m, tea.Quit

	case "up":
		if !m.inputMode() && m.cursor > 0 {
			m.cursor--
		}

	case "down":
		if !m.inputMode() && m.cursor < len(m.choices())-1 {
			m.cursor++
		}

	case " ":
		switch {
		case m.step == stepLanguages:
			m.checked[m.cursor] = !m.checked[m.cursor]
		case m.inputMode():
			m.input += " "
		}

	case "enter":
		if m.inputMode() {
			m.applyInput()
		} else {
			m.applyChoice()
		}

	case "backspace":
		if m.inputMode() && len(m.input) > 0 {
			r := []rune(m.input)
			m.input = string(r[:len(r)-1])
		}

	default:
		if m.inputMode() && key.Type == tea.KeyRunes {
			m.input += string(key.Runes)
		}
	}

	if m.step == stepDone {
		return m, tea.Quit
	}
	return m, nil
}

// goTo moves to step and prefills its input with the default answer.
func (m *wizardModel) goTo(step wizardStep) {
	m.step = step
	m.cursor = 0
	m.err = ""
	m.input = ""
	switch step {
	case stepClass:
		m.input = m.opts.ClassName
	case stepPackage:
		m.input = m.opts.PackageName
	}
}

func (m *wizardModel) applyChoice() {
	items := m.choices()
	if m.cursor >= len(items) {
		return
	}
	switch m.step {
	case stepChain:
		m.result.Chain = items[m.cursor]
		m.goTo(stepAddress)
	case stepSource:
		m.result.Source = sourceValues[m.cursor]
		switch m.result.Source {
		case SourceFile:
			m.goTo(stepABIPath)
		case SourceBuiltin:
			m.goTo(stepBuiltin)
		default:
			m.goTo(stepLanguages)
		}
	case stepBuiltin:
		m.result.Builtin = items[m.cursor]
		m.goTo(stepLanguages)
	case stepLanguages:
		var langs []string
		for i, l := range items {
			if m.checked[i] {
				langs = append(langs, l)
			}
		}
		if len(langs) == 0 {
			m.err = "select at least one language"
			return
		}
		m.result.Languages = langs
		m.goTo(stepClass)
	}
}

func (m *wizardModel) applyInput() {
	// Sanitize: strip whitespace and accidental brackets from paste.
	val := strings.Trim(strings.TrimSpace(m.input), "[]")
	switch m.step {
	case stepAddress:
		addr := val
		if m.opts.ValidateAddr != nil {
			var err error
			if addr, err = m.opts.ValidateAddr(val); err != nil {
				m.err = err.Error()
				return
			}
		}
		m.result.Address = addr
		m.goTo(stepSource)
	case stepABIPath:
		if val == "" {
			m.err = "enter a file path"
			return
		}
		m.result.ABIPath = val
		m.goTo(stepLanguages)
	case stepClass:
		if m.opts.ValidateName != nil {
			if err := m.opts.ValidateName(val); err != nil {
				m.err = err.Error()
				return
			}
		}
		m.result.ClassName = val
		m.goTo(stepPackage)
	case stepPackage:
		if val == "" {
			m.err = "package name cannot be empty"
			return
		}
		if m.opts.ValidatePackage != nil {
			if err := m.opts.ValidatePackage(val); err != nil {
				m.err = err.Error()
				return
			}
		}
		m.result.PackageName = val
		m.goTo(stepDone)
	}
}

func (m wizardModel) View() string {
	var s string

	switch m.step {
	case stepChain:
		s = renderMenu("Select the contract's chain:", m.choices(), m.cursor, nil)
	case stepAddress:
		s = renderInput("Contract address", "0x…", m.input)
	case stepSource:
		s = renderMenu("Where should the ABI come from?", m.choices(), m.cursor, nil)
	case stepABIPath:
		s = renderInput("ABI or compiler artifact path", "./out/Token.sol/Token.json", m.input)
	case stepBuiltin:
		s = renderMenu("Select a built-in ABI:", m.choices(), m.cursor, nil)
	case stepLanguages:
		s = renderMenu("Select languages:", m.choices(), m.cursor, m.checked)
	case stepClass:
		s = renderInput("SDK class name", "", m.input)
	case stepPackage:
		s = renderInput("npm package name", "", m.input)
	case stepDone:
		s = Success("Ready to generate!") + "\n"
	}
	if m.err != "" {
		s += "\n" + Err(m.err)
	}

	return StyleBorder.Render(s) + "\n"
}

func renderInput(title, example, input string) string {
	s := StyleTitle.Render(title) + "\n\n"
	if example != "" {
		s += StyleMeta.Render("e.g. "+example) + "\n"
	}
	s += "> " + StyleAddress.Render(input) + "█\n"
	s += "\n" + StyleMeta.Render("Enter confirm · Esc quit")
	return s
}

// renderMenu draws a single-choice menu, or a checklist when checked is non-nil.
func renderMenu(title string, items []string, cursor int, checked map[int]bool) string {
	s := StyleTitle.Render(title) + "\n\n"
	for i, item := range items {
		icon := "  "
		style := lipgloss.NewStyle().Foreground(ColorValue)
		if i == cursor {
			icon = "▸ "
			style = StyleSelected
		}
		if checked != nil {
			box := "[ ] "
			if checked[i] {
				box = "[x] "
			}
			item = box + item
		}
		s += icon + style.Render(item) + "\n"
	}
	help := "↑/↓ navigate · Enter select · Esc quit"
	if checked != nil {
		help = "↑/↓ navigate · Space toggle · Enter confirm · Esc quit"
	}
	s += "\n" + StyleMeta.Render(help)
	return s
}

// RunWizard launches the interactive SDK wizard. It returns nil without an
// error when the user quits early.
func RunWizard(opts WizardOptions) (*WizardResult, error) {
	if len(opts.Chains) == 0 || len(opts.Languages) == 0 {
		return nil, fmt.Errorf("wizard needs at least one chain and one language")
	}
	p := tea.NewProgram(newWizard(opts))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard error: %w", err)
	}
	fm := final.(wizardModel)
	if fm.canceled || fm.step != stepDone {
		return nil, nil
	}
	result := fm.result
	return &result, nil
}
