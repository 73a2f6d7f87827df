package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExcludeWords(t *testing.T) {
	filter := ExcludeWords([]string{"the", "a"})
	if !filter("hello") {
		t.Fatalf("expected hello to pass stopword filter")
	}
	for _, word := range []string{"the", "a"} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
	if !ExcludeWords(nil)("the") {
		t.Fatalf("expected empty stopword list to keep everything")
	}
}

func TestMinLengthCountsRunes(t *testing.T) {
	filter := MinLength(3)
	if filter("go") {
		t.Fatalf("expected go to be rejected")
	}
	if !filter("été") {
		t.Fatalf("expected été to pass (3 runes)")
	}
}

func TestAllCombinesFilters(t *testing.T) {
	filter := All(ExcludeWords([]string{"and"}), MinLength(3), nil)
	if filter("and") || filter("is") {
		t.Fatalf("expected stopword and short word to be rejected")
	}
	if !filter("reading") {
		t.Fatalf("expected reading to pass")
	}
}

func TestLoadWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	if err := os.WriteFile(path, []byte("# english\nThe\n\n  and \nOF\n"), 0o644); err != nil {
		t.Fatalf("write stopwords: %v", err)
	}
	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("LoadWords failed: %v", err)
	}
	want := []string{"the", "and", "of"}
	if len(words) != len(want) {
		t.Fatalf("expected %d words, got %v", len(want), words)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Fatalf("expected %q at %d, got %q", want[i], i, words[i])
		}
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n# only comments\n"), 0o644); err != nil {
		t.Fatalf("write stopwords: %v", err)
	}
	if _, err := LoadWords(path); err == nil {
		t.Fatalf("expected error for empty word list")
	}
}
