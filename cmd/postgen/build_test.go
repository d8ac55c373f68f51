package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBuildWritesSlugFile(t *testing.T) {
	dir := t.TempDir()
	content := "Prvý odsek.\n\nDruhý odsek s viac riadkami.\nĎalší riadok."
	stdout, _, err := runCLI(t, content, "build", "--title", "Bolesť chrbta!", "--date", "2024-01-05", "--out", dir)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	path := filepath.Join(dir, "bolest-chrbta.html")
	if strings.TrimSpace(stdout) != path {
		t.Errorf("stdout = %q, want %q", stdout, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "<p>Druhý odsek s viac riadkami.<br>Ďalší riadok.</p>") {
		t.Errorf("content not rendered:\n%s", html)
	}
	if !strings.Contains(html, `<p class="post-meta">5. 1. 2024</p>`) {
		t.Errorf("display date missing")
	}
}

func TestBuildReadsContentFileAndImage(t *testing.T) {
	dir := t.TempDir()
	contentPath := filepath.Join(dir, "post.txt")
	if err := os.WriteFile(contentPath, []byte("Obsah článku."), 0o644); err != nil {
		t.Fatal(err)
	}
	imgPath := filepath.Join(dir, "hero.gif")
	if err := os.WriteFile(imgPath, []byte("GIF89a\x01\x00\x01\x00"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, stderr, err := runCLI(t, "", "build", "-t", "Koleno", "-c", contentPath, "-i", imgPath, "--alt", "Koleno", "-o", dir, "--preview")
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "koleno.html"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `content="data:image/gif;base64,`) {
		t.Errorf("image not embedded")
	}
	if !strings.Contains(stderr, "<!DOCTYPE html>") {
		t.Errorf("preview not printed to stderr")
	}
}

func TestBuildMissingContent(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runCLI(t, "   ", "build", "--title", "Nadpis", "--out", dir)
	if err == nil || !strings.Contains(err.Error(), "Prosím vyplň nadpis aj obsah článku.") {
		t.Fatalf("err = %v, want missing fields message", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("expected no output files, got %d", len(entries))
	}
}

func TestBuildMissingImage(t *testing.T) {
	dir := t.TempDir()
	_, _, err := runCLI(t, "Text", "build", "--title", "Nadpis", "--image", filepath.Join(dir, "nope.png"), "--out", dir)
	if err == nil || !strings.Contains(err.Error(), "Nepodarilo sa načítať obrázok") {
		t.Fatalf("err = %v, want image message", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "nadpis.html")); !os.IsNotExist(statErr) {
		t.Errorf("output written despite image failure")
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := runCLI(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if stdout != "postgen dev\n" {
		t.Errorf("stdout = %q", stdout)
	}
}
