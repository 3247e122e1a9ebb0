package discord

import (
	"strings"
	"testing"
)

func TestSplitMessage(t *testing.T) {
	if got := SplitMessage("  \n ", 10); len(got) != 0 {
		t.Fatalf("expected no chunks, got %#v", got)
	}

	got := SplitMessage("short", 10)
	if len(got) != 1 || got[0] != "short" {
		t.Fatalf("unexpected %#v", got)
	}

	got = SplitMessage("aaaa\nbbbb\ncccc", 10)
	if len(got) != 2 || got[0] != "aaaa\nbbbb" || got[1] != "cccc" {
		t.Fatalf("expected split on line break, got %#v", got)
	}

	long := strings.Repeat("x", 25)
	got = SplitMessage(long, 10)
	if len(got) != 3 || len(got[0]) != 10 || len(got[2]) != 5 {
		t.Fatalf("expected hard split of long line, got %#v", got)
	}
}

func TestNew_RequiresToken(t *testing.T) {
	if _, err := New(" "); err == nil {
		t.Fatalf("expected error for empty token")
	}
	c, err := New("abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.s.Token != "Bot abc" {
		t.Fatalf("expected Bot prefix, got %q", c.s.Token)
	}
	if err := c.PostText("", "hi"); err == nil {
		t.Fatalf("expected error for empty channel")
	}
}
