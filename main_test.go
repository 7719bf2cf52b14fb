package main

import (
	"bytes"
	"strings"
	"testing"
)

// Running the app must not panic while the flag sets are built; this guards
// against global flag collisions with the cli package defaults.
func TestAppHelp(t *testing.T) {
	app := newApp()
	app.Writer = &bytes.Buffer{}

	if err := app.Run([]string{app.Name, "--help"}); err != nil {
		t.Fatalf("running --help: %v", err)
	}
}

func TestAppVersionFlag(t *testing.T) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	if err := app.Run([]string{app.Name, "--version"}); err != nil {
		t.Fatalf("running --version: %v", err)
	}
	if !strings.Contains(out.String(), app.Version) {
		t.Errorf("version output %q does not contain %q", out.String(), app.Version)
	}
}

func TestAppValidateCommand(t *testing.T) {
	app := newApp()
	app.Writer = &bytes.Buffer{}

	if err := app.Run([]string{app.Name, "validate", "scenes/cornell.json"}); err != nil {
		t.Fatalf("validating example scene: %v", err)
	}
}

func TestAppValidateMissingArgument(t *testing.T) {
	app := newApp()
	app.Writer = &bytes.Buffer{}

	if err := app.Run([]string{app.Name, "validate"}); err == nil {
		t.Error("expected an error when no scene file is given")
	}
}
