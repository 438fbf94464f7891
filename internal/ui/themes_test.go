package ui

import (
	"os"
	"testing"
)

func restoreTheme(t *testing.T) {
	t.Helper()
	prev := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(prev) })
}

func TestInitTheme(t *testing.T) {
	t.Run("explicit no-color wins", func(t *testing.T) {
		restoreTheme(t)
		InitTheme(true)
		if got := GetCurrentTheme().Name; got != "none" {
			t.Errorf("theme = %q, want none", got)
		}
	})

	t.Run("NO_COLOR env disables colors", func(t *testing.T) {
		restoreTheme(t)
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if got := GetCurrentTheme().Name; got != "none" {
			t.Errorf("theme = %q, want none", got)
		}
	})

	t.Run("colors on by default", func(t *testing.T) {
		restoreTheme(t)
		// t.Setenv registers the variable for cleanup before unsetting it, so
		// the surrounding environment is restored either way.
		t.Setenv("NO_COLOR", "")
		if err := os.Unsetenv("NO_COLOR"); err != nil {
			t.Fatal(err)
		}
		InitTheme(false)
		if got := GetCurrentTheme().Name; got != "dark" {
			t.Errorf("theme = %q, want dark", got)
		}
	})
}

func TestNoColorStylesAreTransparent(t *testing.T) {
	restoreTheme(t)
	SetCurrentTheme(NoColorTheme)

	styles := GetCurrentStyles()
	if got := styles.Result.Render("46"); got != "46" {
		t.Errorf("Result style altered output: %q", got)
	}
	if got := styles.ReportBox.Render("body"); got != "body" {
		t.Errorf("ReportBox style altered output: %q", got)
	}

	theme := GetCurrentTheme()
	if theme.Primary != "" || theme.Reset != "" {
		t.Error("no-color theme still carries escape codes")
	}
}
