package cli

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{input: "", want: OutputFormatText},
		{input: "text", want: OutputFormatText},
		{input: "json", want: OutputFormatJSON},
		{input: "yaml", wantErr: true},
		{input: "JSON", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("input_"+tt.input, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOutputFormat(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutputWriterText(t *testing.T) {
	var buf bytes.Buffer
	w := NewOutputWriterTo(OutputFormatText, &buf)

	err := w.Write(map[string]string{"ignored": "for text"}, func(out io.Writer) {
		fmt.Fprintln(out, "hello")
	})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.String() != "hello\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestOutputWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewOutputWriterTo(OutputFormatJSON, &buf)

	err := w.Write(map[string]string{"key": "value"}, func(out io.Writer) {
		t.Error("textFunc must not run for JSON output")
	})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), `"key": "value"`) {
		t.Errorf("output = %q", buf.String())
	}
}
