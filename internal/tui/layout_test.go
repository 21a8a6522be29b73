package tui

import "testing"

func TestPageLayoutUpdate(t *testing.T) {
	cases := []struct {
		name             string
		width            int
		height           int
		stacked          bool
		mainWidth        int
		sidebarWidth     int
		inputWidth       int
		transcriptHeight int
		showIntro        bool
	}{
		{name: "narrow", width: 80, height: 24, stacked: true, mainWidth: 76, sidebarWidth: 76, inputWidth: 70, transcriptHeight: 6},
		{name: "default", width: 120, height: 40, mainWidth: 76, sidebarWidth: 38, inputWidth: 70, transcriptHeight: 12},
		{name: "wide", width: 200, height: 40, mainWidth: 129, sidebarWidth: 65, inputWidth: 123, transcriptHeight: 12},
		{name: "tall", width: 120, height: 60, mainWidth: 76, sidebarWidth: 38, inputWidth: 70, transcriptHeight: 22, showIntro: true},
		{name: "tiny", width: 10, height: 5, stacked: true, mainWidth: 40, sidebarWidth: 40, inputWidth: 34, transcriptHeight: 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout := newPageLayout()
			layout.Update(tc.width, tc.height)
			if layout.stacked != tc.stacked {
				t.Fatalf("stacked mismatch: got %v want %v", layout.stacked, tc.stacked)
			}
			if layout.mainWidth != tc.mainWidth {
				t.Fatalf("main width mismatch: got %d want %d", layout.mainWidth, tc.mainWidth)
			}
			if layout.sidebarWidth != tc.sidebarWidth {
				t.Fatalf("sidebar width mismatch: got %d want %d", layout.sidebarWidth, tc.sidebarWidth)
			}
			if layout.inputWidth != tc.inputWidth {
				t.Fatalf("input width mismatch: got %d want %d", layout.inputWidth, tc.inputWidth)
			}
			if layout.transcriptHeight != tc.transcriptHeight {
				t.Fatalf("transcript height mismatch: got %d want %d", layout.transcriptHeight, tc.transcriptHeight)
			}
			if layout.showIntro != tc.showIntro {
				t.Fatalf("intro visibility mismatch: got %v want %v", layout.showIntro, tc.showIntro)
			}
		})
	}
}

func TestJoinNonEmptySkipsBlankParts(t *testing.T) {
	got := joinNonEmpty([]string{"a", "  ", "", "b"})
	if got != "a\n\nb" {
		t.Fatalf("unexpected join: %q", got)
	}
}
