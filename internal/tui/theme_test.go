package tui

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

var errTest = errors.New("boom")

func TestSetThemeUnknownIgnored(t *testing.T) {
	t.Cleanup(func() { SetTheme("default") })
	if SetTheme("nope") {
		t.Fatalf("expected unknown theme to be rejected")
	}
	if CurrentTheme.Name != "Default" {
		t.Fatalf("expected default theme to remain")
	}
	if !SetTheme("mono") || CurrentTheme.Name != "Mono" {
		t.Fatalf("expected mono theme")
	}
}

func TestNextThemeWraps(t *testing.T) {
	if NextTheme("default") != "dracula" || NextTheme("dracula") != "mono" || NextTheme("mono") != "default" {
		t.Fatalf("unexpected theme order")
	}
	if NextTheme("unknown") != "default" {
		t.Fatalf("expected unknown theme to restart the cycle")
	}
}

func TestThemesColourBorders(t *testing.T) {
	for name, th := range Themes {
		if th.Border == "" {
			t.Fatalf("theme %s has no border colour", name)
		}
		for _, st := range []lipgloss.Style{th.Clock, th.Input} {
			if got := th.bordered(st).GetBorderTopForeground(); got != th.Border {
				t.Fatalf("theme %s: expected border %v, got %v", name, th.Border, got)
			}
		}
	}
}
