package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/rgbsweeper/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextStyled(0, 0, "RED", core.ColorRed, core.AttrBold)
	s.DrawText(4, 0, "plain")
	s.SetStyled(0, 1, 'P', core.ColorBlue, core.AttrUnderline|core.AttrReverse)

	out := RenderScreen(s)

	for _, want := range []string{"RED", "plain", "P"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() output missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("expected 2 lines, got %d newlines", got)
	}
}

func TestCellStyleAttributes(t *testing.T) {
	tests := []struct {
		attr      core.Attr
		bold      bool
		underline bool
		reverse   bool
	}{
		{core.AttrNone, false, false, false},
		{core.AttrBold, true, false, false},
		{core.AttrUnderline, false, true, false},
		{core.AttrReverse, false, false, true},
		{core.AttrBold | core.AttrUnderline | core.AttrReverse, true, true, true},
	}

	for _, tc := range tests {
		style := cellStyle(core.ColorGreen, tc.attr)
		if style.GetBold() != tc.bold || style.GetUnderline() != tc.underline || style.GetReverse() != tc.reverse {
			t.Errorf("cellStyle(%v) = bold %v underline %v reverse %v, expected %v %v %v",
				tc.attr, style.GetBold(), style.GetUnderline(), style.GetReverse(),
				tc.bold, tc.underline, tc.reverse)
		}
	}
}

func TestCellStyleUnknownColor(t *testing.T) {
	style := cellStyle(core.Color(200), core.AttrNone)
	if style.GetForeground() != colorStyles[core.ColorDefault].GetForeground() {
		t.Error("unknown colors should fall back to the default style")
	}
}
