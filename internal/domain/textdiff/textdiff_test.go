package textdiff

import (
	"reflect"
	"testing"
)

func TestLines(t *testing.T) {
	t.Run("identical texts produce no changes", func(t *testing.T) {
		if got := Lines("a\nb", "a\nb"); len(got) != 0 {
			t.Fatalf("expected no changes, got %+v", got)
		}
	})

	t.Run("modified line", func(t *testing.T) {
		got := Lines("intro\nbody", "intro\nrevised body")
		want := []Change{{Type: ChangeModified, Line: 2, From: "body", To: "revised body"}}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("added lines", func(t *testing.T) {
		got := Lines("intro", "intro\noutro\nps")
		want := []Change{
			{Type: ChangeAdded, Line: 2, To: "outro"},
			{Type: ChangeAdded, Line: 3, To: "ps"},
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("removed lines", func(t *testing.T) {
		got := Lines("intro\noutro", "intro")
		want := []Change{{Type: ChangeRemoved, Line: 2, From: "outro"}}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("empty against content", func(t *testing.T) {
		got := Lines("", "first")
		want := []Change{{Type: ChangeAdded, Line: 1, To: "first"}}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		a := Lines("one\ntwo\nthree", "one\n2\nthree\nfour")
		b := Lines("one\ntwo\nthree", "one\n2\nthree\nfour")
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("expected identical diffs, got %+v vs %+v", a, b)
		}
	})
}
