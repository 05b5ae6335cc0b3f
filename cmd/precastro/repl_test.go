package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/openastro/precastro/precastro"
)

func testModel(t *testing.T) replModel {
	t.Helper()
	mod, err := precastro.NewThingie()
	if err != nil {
		t.Fatalf("NewThingie: %v", err)
	}
	m := newREPLModel(mod)
	m.initialized = true
	m.width = 80
	m.height = 24
	return m
}

func pressEnter(m replModel, input string) (replModel, tea.Cmd) {
	m.textInput.SetValue(input)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(replModel), cmd
}

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	m := testModel(t)
	m, cmd := pressEnter(m, ":quit")
	if !m.quitting {
		t.Fatalf("expected quitting to be true after :quit")
	}
	if cmd == nil {
		t.Fatalf("expected a tea.Quit command, got nil")
	}
}

func TestUpdateCallAppendsHistory(t *testing.T) {
	m := testModel(t)
	m, _ = pressEnter(m, "thingie 42")
	if len(m.history) != 1 {
		t.Fatalf("history length = %d, want 1", len(m.history))
	}
	entry := m.history[0]
	if entry.isErr {
		t.Fatalf("unexpected error output: %q", entry.output)
	}
	if entry.output != "42" {
		t.Fatalf("output = %q, want %q", entry.output, "42")
	}
	if m.textInput.Value() != "" {
		t.Fatalf("input not cleared after enter")
	}
}

func TestUpdateEmptyInputIsIgnored(t *testing.T) {
	m := testModel(t)
	m, _ = pressEnter(m, "   ")
	if len(m.history) != 0 {
		t.Fatalf("history length = %d, want 0", len(m.history))
	}
}

func TestUpdateUnknownColonCommand(t *testing.T) {
	m := testModel(t)
	m, _ = pressEnter(m, ":bogus")
	if len(m.history) != 1 || !m.history[0].isErr {
		t.Fatalf("expected one error entry, got %+v", m.history)
	}
}

func TestHistoryNavigation(t *testing.T) {
	m := testModel(t)
	m, _ = pressEnter(m, "thingie 1")
	m, _ = pressEnter(m, "thingie 2")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(replModel)
	if got := m.textInput.Value(); got != "thingie 2" {
		t.Fatalf("after up: input = %q, want %q", got, "thingie 2")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(replModel)
	if got := m.textInput.Value(); got != "thingie 1" {
		t.Fatalf("after second up: input = %q, want %q", got, "thingie 1")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(replModel)
	if got := m.textInput.Value(); got != "thingie 2" {
		t.Fatalf("after down: input = %q, want %q", got, "thingie 2")
	}
}

func TestAutocompleteSingleMatch(t *testing.T) {
	m := testModel(t)
	m.textInput.SetValue("thi")
	m = m.handleAutocomplete()
	if got := m.textInput.Value(); got != "thingie " {
		t.Fatalf("autocomplete = %q, want %q", got, "thingie ")
	}
}

func TestEvalLineSuccess(t *testing.T) {
	mod, err := precastro.NewThingie()
	if err != nil {
		t.Fatalf("NewThingie: %v", err)
	}
	out, isErr := evalLine(mod, "thingie 7")
	if isErr {
		t.Fatalf("unexpected error: %q", out)
	}
	if out != "7" {
		t.Fatalf("evalLine = %q, want %q", out, "7")
	}
}

func TestEvalLineErrors(t *testing.T) {
	mod, err := precastro.NewThingie()
	if err != nil {
		t.Fatalf("NewThingie: %v", err)
	}
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown function", "nope 1", "unknown function"},
		{"bad arity", "thingie", "bad argument"},
		{"non-numeric arg", "thingie x", "not numeric"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, isErr := evalLine(mod, tt.input)
			if !isErr {
				t.Fatalf("expected error output, got %q", out)
			}
			if !strings.Contains(out, tt.want) {
				t.Fatalf("output %q does not contain %q", out, tt.want)
			}
		})
	}
}
