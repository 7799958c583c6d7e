package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"respcss/state"
)

func TestGenerateHelp(t *testing.T) {
	var buf bytes.Buffer

	app := newApp()
	app.Before, app.After = nil, nil
	app.Writer, app.ErrWriter = &buf, &buf

	if err := app.Run(state.ContextWithEnv(context.Background()), []string{"respcss", "generate", "--help"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"template: 'flex-direction: {{ .direction }};'",
		"value: {xs: column, l: row}",
		"rules of all documents are combined into one stylesheet",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("help output misses %q:\n%s", want, out)
		}
	}
}

func TestDumpconfigHelp(t *testing.T) {
	var buf bytes.Buffer

	app := newApp()
	app.Before, app.After = nil, nil
	app.Writer, app.ErrWriter = &buf, &buf

	if err := app.Run(state.ContextWithEnv(context.Background()), []string{"respcss", "dumpconfig", "--help"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out := buf.String(); !strings.Contains(out, "configuration embedded into the program use --default flag.") {
		t.Errorf("help output is truncated:\n%s", out)
	}
}
