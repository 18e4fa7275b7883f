package templates

import (
	"context"
	"strings"
	"testing"
)

func TestBuildPathBreadcrumbsIncludesRootAndSegments(t *testing.T) {
	items := BuildPathBreadcrumbs("/icons/house", nil, PathBreadcrumbOptions{
		IncludeRoot: true,
		RootLabel:   "Home",
	})

	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	if items[0].Label != "Home" || items[0].URL != "/" {
		t.Fatalf("root item = %+v, want Home at /", items[0])
	}
	if items[1].Label != "Icons" || items[1].URL != "/icons" {
		t.Fatalf("middle item = %+v, want Icons at /icons", items[1])
	}
	if items[2].Label != "House" || items[2].URL != "" {
		t.Fatalf("last item = %+v, want House with no URL", items[2])
	}
}

func TestBuildPathBreadcrumbsUsesSegmentNames(t *testing.T) {
	items := BuildPathBreadcrumbs("/icons/magnifying-glass", nil, PathBreadcrumbOptions{
		SegmentNames: map[string]string{"magnifying-glass": "Magnifying Glass"},
	})

	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[1].Label != "Magnifying Glass" {
		t.Fatalf("items[1].Label = %q, want mapped name", items[1].Label)
	}
}

func TestBuildPathBreadcrumbsHumanizesSeparators(t *testing.T) {
	items := BuildPathBreadcrumbs("/file-text", nil, PathBreadcrumbOptions{})
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].Label != "File Text" {
		t.Fatalf("items[0].Label = %q, want %q", items[0].Label, "File Text")
	}
}

func TestBuildPathBreadcrumbsEmptyPath(t *testing.T) {
	if items := BuildPathBreadcrumbs("/", nil, PathBreadcrumbOptions{IncludeRoot: true, RootLabel: "Home"}); len(items) != 0 {
		t.Fatalf("len(items) = %d, want 0 for root path", len(items))
	}
}

func TestBreadcrumbsComponentMarksCurrentPage(t *testing.T) {
	var b strings.Builder
	err := Breadcrumbs([]BreadcrumbItem{
		{Label: "Home", URL: "/"},
		{Label: "Icons & Glyphs"},
	}).Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	got := b.String()
	if !strings.Contains(got, `<a href="/">Home</a>`) {
		t.Fatalf("expected linked root crumb, got %q", got)
	}
	if !strings.Contains(got, `<span aria-current="page">Icons &amp; Glyphs</span>`) {
		t.Fatalf("expected escaped current-page crumb, got %q", got)
	}
}

func TestBreadcrumbsComponentEmptyRendersNothing(t *testing.T) {
	var b strings.Builder
	if err := Breadcrumbs(nil).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if b.Len() != 0 {
		t.Fatalf("expected empty output, got %q", b.String())
	}
}
