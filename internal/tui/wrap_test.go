package tui

import (
	"reflect"
	"testing"
)

func TestWrapWords(t *testing.T) {
	got := wrapWords("Shorter than 8 characters; Uses only digits", 16)
	want := []string{"Shorter than 8", "characters; Uses", "only digits"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapWordsLongWord(t *testing.T) {
	got := wrapWords("a supercalifragilistic b", 5)
	want := []string{"a", "supercalifragilistic", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapWordsEmpty(t *testing.T) {
	if got := wrapWords("   ", 10); got != nil {
		t.Fatalf("expected nil, got %q", got)
	}
}
