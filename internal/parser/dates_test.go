package parser

import (
	"testing"
	"time"
)

func TestParseFlexibleDate_SerialEpoch(t *testing.T) {
	t.Parallel()

	// 序列号 25569 对应 1970-01-01
	got, ok := ParseFlexibleDate("25569")
	if !ok {
		t.Fatalf("expected parse ok")
	}
	want := time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("serial 25569: got=%s want=%s", got, want)
	}
}

func TestParseFlexibleDate_Literals(t *testing.T) {
	t.Parallel()

	want := time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"15/02/2026", "15-Feb-2026", "2026-02-15", " 15/02/2026 "} {
		got, ok := ParseFlexibleDate(in)
		if !ok {
			t.Fatalf("parse %q: expected ok", in)
		}
		if !got.Equal(want) {
			t.Fatalf("parse %q: got=%s want=%s", in, got, want)
		}
	}
}

func TestParseFlexibleDate_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "  ", "soon", "15 February"} {
		if _, ok := ParseFlexibleDate(in); ok {
			t.Fatalf("parse %q: expected failure", in)
		}
	}
}
