// Command icondocgen regenerates docs/icon-catalog.md from the built-in
// icon catalog. With -check it verifies the file instead of writing it,
// so CI can fail when the catalog and the doc drift apart.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	entrypoint "github.com/versocms/verso/internal/platform/cmd"
	"github.com/versocms/verso/internal/platform/icons"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		entrypoint.Exitf("icondocgen: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var (
		outPath  string
		rootFlag string
		check    bool
	)
	flags := flag.NewFlagSet("icondocgen", flag.ContinueOnError)
	flags.StringVar(&outPath, "out", "docs/icon-catalog.md", "output path for the icon catalog")
	flags.StringVar(&rootFlag, "root", "", "repo root (defaults to locating go.mod)")
	flags.BoolVar(&check, "check", false, "verify the catalog is current instead of writing it")
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}

	root, err := resolveRoot(rootFlag)
	if err != nil {
		return err
	}
	target := outPath
	if !filepath.IsAbs(target) {
		target = filepath.Join(root, outPath)
	}

	content := []byte(icons.CatalogMarkdown())
	if check {
		current, err := os.ReadFile(target)
		if err != nil {
			return fmt.Errorf("read %s: %w", outPath, err)
		}
		if !bytes.Equal(current, content) {
			return fmt.Errorf("%s is stale, rerun icondocgen", outPath)
		}
		fmt.Fprintf(stdout, "%s is current\n", outPath)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	fmt.Fprintf(stdout, "wrote %s\n", outPath)
	return nil
}

// resolveRoot picks the repository root so generated docs land in the
// right tree.
func resolveRoot(flagRoot string) (string, error) {
	if flagRoot != "" {
		return filepath.Clean(flagRoot), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working dir: %w", err)
	}
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", wd)
		}
		dir = parent
	}
}
