package branding

import "testing"

func TestAppName(t *testing.T) {
	if got, want := AppName, "Verso"; got != want {
		t.Fatalf("AppName = %q, want %q", got, want)
	}
}
