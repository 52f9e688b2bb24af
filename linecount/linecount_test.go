package linecount

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCount(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.go", "one\ntwo\nthree\n")
	writeFile(t, dir, "b.txt", "not counted\n")
	writeFile(t, dir, "empty.go", "")
	writeFile(t, dir, "sub/c.go", "no trailing newline")

	// A symlinked directory outside the tree must be followed.
	target := t.TempDir()
	writeFile(t, target, "d.go", "x\ny\n")
	if err := os.Symlink(target, filepath.Join(dir, "link")); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Count(dir, "go", &buf); err != nil {
		t.Fatalf("Count: %v", err)
	}

	want := filepath.Join(dir, "a.go") + " 3\n" +
		filepath.Join(dir, "empty.go") + " 0\n" +
		filepath.Join(dir, "link", "d.go") + " 2\n" +
		filepath.Join(dir, "sub", "c.go") + " 1\n"
	if got := buf.String(); got != want {
		t.Errorf("output =\n%s\nwant:\n%s", got, want)
	}
}

func TestCountNoMatches(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "hello\n")

	var buf bytes.Buffer
	if err := Count(dir, "go", &buf); err != nil {
		t.Fatalf("Count: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestCountSuffixIsExact(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ago", "x\n")   // no dot before the extension
	writeFile(t, dir, "a.gox", "x\n") // longer extension

	var buf bytes.Buffer
	if err := Count(dir, "go", &buf); err != nil {
		t.Fatalf("Count: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestCountUnreadableMatchAborts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.go", "x\n")
	// A matched name that cannot be opened must abort the run.
	if err := os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "broken.go")); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Count(dir, "go", &buf); err == nil {
		t.Error("Count should fail on an unopenable match")
	}
}
