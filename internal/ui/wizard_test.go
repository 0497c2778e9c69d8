package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWizardOptions() WizardOptions {
	return WizardOptions{
		Chains:      []string{"somnia-testnet", "base"},
		Builtins:    []string{"erc20", "erc721"},
		Languages:   []string{"javascript", "typescript"},
		ClassName:   "GeneratedSDK",
		PackageName: "generated-sdk",
		ValidateAddr: func(s string) (string, error) {
			if !strings.HasPrefix(s, "0x") {
				return "", errors.New("invalid contract address")
			}
			return strings.ToUpper(s[:2]) + s[2:], nil
		},
		ValidateName: func(s string) error {
			if s == "" || strings.ContainsAny(s, " -") {
				return errors.New("invalid class name")
			}
			return nil
		},
		ValidatePackage: func(s string) error {
			if strings.ToLower(s) != s {
				return errors.New("invalid package name")
			}
			return nil
		},
	}
}

func press(m wizardModel, keys ...string) wizardModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(wizardModel)
	}
	return m
}

func TestWizardBuiltinFlow(t *testing.T) {
	m := newWizard(testWizardOptions())

	m = press(m, "down", "enter") // base
	require.Equal(t, stepAddress, m.step)
	m = press(m, "0xabc", "enter")
	require.Equal(t, stepSource, m.step)
	m = press(m, "down", "down", "enter") // builtin
	require.Equal(t, stepBuiltin, m.step)
	m = press(m, "down", "enter") // erc721
	require.Equal(t, stepLanguages, m.step)
	m = press(m, "down", "space", "enter") // javascript preselected + typescript
	require.Equal(t, stepClass, m.step)
	assert.Equal(t, "GeneratedSDK", m.input, "default class name is prefilled")
	m = press(m, "enter", "enter")
	require.Equal(t, stepDone, m.step)

	assert.Equal(t, WizardResult{
		Chain:       "base",
		Address:     "0Xabc",
		Source:      SourceBuiltin,
		Builtin:     "erc721",
		Languages:   []string{"javascript", "typescript"},
		ClassName:   "GeneratedSDK",
		PackageName: "generated-sdk",
	}, m.result)
}

func TestWizardFileFlow(t *testing.T) {
	m := newWizard(testWizardOptions())
	m = press(m, "enter", "0xabc", "enter", "enter") // file source
	require.Equal(t, stepABIPath, m.step)

	m = press(m, "enter")
	assert.Equal(t, stepABIPath, m.step, "empty path is rejected")
	assert.NotEmpty(t, m.err)

	m = press(m, "./Token.json", "enter")
	require.Equal(t, stepLanguages, m.step)
	assert.Empty(t, m.err)
	assert.Equal(t, "./Token.json", m.result.ABIPath)
	assert.Equal(t, SourceFile, m.result.Source)
}

func TestWizardExplorerSkipsPath(t *testing.T) {
	m := newWizard(testWizardOptions())
	m = press(m, "enter", "0xabc", "enter", "down", "enter")
	assert.Equal(t, SourceExplorer, m.result.Source)
	assert.Equal(t, stepLanguages, m.step)
}

func TestWizardValidation(t *testing.T) {
	m := newWizard(testWizardOptions())
	m = press(m, "enter", "abc", "enter")
	assert.Equal(t, stepAddress, m.step)
	assert.Contains(t, m.View(), "invalid contract address")

	m = press(m, "backspace", "backspace", "backspace", "0x1", "enter", "down", "enter")
	require.Equal(t, stepLanguages, m.step)

	m = press(m, "space", "enter") // uncheck javascript: nothing selected
	assert.Equal(t, stepLanguages, m.step)
	assert.Equal(t, "select at least one language", m.err)

	m = press(m, "space", "enter")
	require.Equal(t, stepClass, m.step)
	assert.Empty(t, m.err)

	m = press(m, "space", "X", "enter")
	assert.Equal(t, stepClass, m.step, "class names with spaces are rejected")
	assert.Equal(t, "invalid class name", m.err)
}

func TestWizardPackageValidation(t *testing.T) {
	m := newWizard(testWizardOptions())
	m = press(m, "enter", "0xabc", "enter", "down", "enter", "enter", "enter")
	require.Equal(t, stepPackage, m.step)
	assert.Equal(t, "generated-sdk", m.input)

	m = press(m, "X", "enter")
	assert.Equal(t, stepPackage, m.step)
	assert.Equal(t, "invalid package name", m.err)

	m = press(m, "backspace", "enter")
	require.Equal(t, stepDone, m.step)
	assert.Equal(t, "generated-sdk", m.result.PackageName)
}

func TestWizardCancel(t *testing.T) {
	m := newWizard(testWizardOptions())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(wizardModel).canceled)
	assert.NotNil(t, cmd)
}

func TestWizardViewShowsChecklist(t *testing.T) {
	m := newWizard(testWizardOptions())
	m = press(m, "enter", "0xabc", "enter", "down", "enter")
	view := m.View()
	assert.Contains(t, view, "[x] javascript")
	assert.Contains(t, view, "[ ] typescript")
}

func TestRunWizardNeedsOptions(t *testing.T) {
	_, err := RunWizard(WizardOptions{})
	assert.Error(t, err)
}
