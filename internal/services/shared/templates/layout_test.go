package templates

import (
	"testing"

	"github.com/versocms/verso/internal/platform/branding"
)

func TestComposePageTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "plain title gains brand suffix",
			title: "Icon library",
			want:  "Icon library | " + branding.AppName,
		},
		{
			name:  "existing pipe suffix is kept",
			title: "Icon library | " + branding.AppName,
			want:  "Icon library | " + branding.AppName,
		},
		{
			name:  "hyphen suffix is normalized",
			title: "Icon library - " + branding.AppName,
			want:  "Icon library | " + branding.AppName,
		},
		{
			name:  "blank title falls back to brand name",
			title: "  ",
			want:  branding.AppName,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := ComposePageTitle(tc.title); got != tc.want {
				t.Fatalf("ComposePageTitle(%q) = %q, want %q", tc.title, got, tc.want)
			}
		})
	}
}

func TestTFallsBackToKeyString(t *testing.T) {
	if got := T(nil, "icons.heading"); got != "icons.heading" {
		t.Fatalf("T() = %q, want key fallback", got)
	}
	if got := T(nil, "%d icons", 3); got != "3 icons" {
		t.Fatalf("T() = %q, want %q", got, "3 icons")
	}
}
