package prompt

import (
	"errors"
	"testing"
)

func TestMockDefaults(t *testing.T) {
	m := &Mock{}

	if v, err := m.Input(InputConfig{Title: "Name"}); v != "" || err != nil {
		t.Errorf("Input() = %q, %v", v, err)
	}
	if v, err := m.Confirm(ConfirmConfig{Title: "Sure?"}); v || err != nil {
		t.Errorf("Confirm() = %v, %v", v, err)
	}
	if v, err := m.Select(SelectConfig{Title: "Pick"}); v != "" || err != nil {
		t.Errorf("Select() = %q, %v", v, err)
	}

	if len(m.InputCalls) != 1 || m.InputCalls[0].Title != "Name" {
		t.Errorf("InputCalls = %+v", m.InputCalls)
	}
	if len(m.ConfirmCalls) != 1 || len(m.SelectCalls) != 1 {
		t.Errorf("expected one call each, got %d confirm, %d select", len(m.ConfirmCalls), len(m.SelectCalls))
	}
}

func TestMockFuncs(t *testing.T) {
	wantErr := errors.New("boom")
	m := &Mock{
		InputFunc: func(cfg InputConfig) (string, error) { return "Jane", nil },
		SelectFunc: func(cfg SelectConfig) (string, error) {
			return "", wantErr
		},
	}

	if v, _ := m.Input(InputConfig{}); v != "Jane" {
		t.Errorf("Input() = %q", v)
	}
	if _, err := m.Select(SelectConfig{}); !errors.Is(err, wantErr) {
		t.Errorf("Select() err = %v", err)
	}
}
