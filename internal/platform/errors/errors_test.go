package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := New(CodeThemeNotFound, "theme missing")
	wrapped := fmt.Errorf("resolve: %w", err)

	if !stderrors.Is(wrapped, New(CodeThemeNotFound, "other message")) {
		t.Fatal("expected code match through wrapping")
	}
	if stderrors.Is(wrapped, New(CodeThemeBaseMissing, "theme missing")) {
		t.Fatal("expected mismatch on different code")
	}
}

func TestUnwrapReturnsCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(CodeThemeManifestInvalid, "parse theme manifest", cause)

	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in error chain")
	}
	if got, want := err.Error(), "parse theme manifest: boom"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestWrapWithMetadataKeepsCodeAndContext(t *testing.T) {
	cause := stderrors.New("yaml: bad indent")
	err := WrapWithMetadata(CodeExtensionManifestInvalid, "parse extension manifest", map[string]string{"Name": "media"}, cause)

	if !stderrors.Is(err, New(CodeExtensionManifestInvalid, "")) {
		t.Fatal("expected code match")
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in error chain")
	}
	if got := err.Metadata["Name"]; got != "media" {
		t.Fatalf("Metadata[Name] = %q, want %q", got, "media")
	}
}
