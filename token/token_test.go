package token

import "testing"

func TestPosition(t *testing.T) {
	pos := Position{
		Line:   2,
		Column: 0,
	}
	// Switches to 1-indexed
	if pos.LineNumber() != 3 {
		t.Errorf("expected line number 3, got %d", pos.LineNumber())
	}
	if pos.ColumnNumber() != 1 {
		t.Errorf("expected column number 1, got %d", pos.ColumnNumber())
	}
}

func TestPositionAdvance(t *testing.T) {
	pos := Position{
		Char:   10,
		Line:   1,
		Column: 4,
		File:   "main.tsx",
	}
	end := pos.Advance(3)
	if end.Char != 13 {
		t.Errorf("expected char 13, got %d", end.Char)
	}
	if end.Column != 7 {
		t.Errorf("expected column 7, got %d", end.Column)
	}
	if end.Line != pos.Line {
		t.Errorf("expected line to be unchanged, got %d", end.Line)
	}
	if end.File != "main.tsx" {
		t.Errorf("expected file to carry over, got %q", end.File)
	}
}

func TestPositionIsValid(t *testing.T) {
	if NoPos.IsValid() {
		t.Error("expected NoPos to be invalid")
	}
	if !(Position{Line: 3}).IsValid() {
		t.Error("expected non-zero position to be valid")
	}
	if !(Position{File: "a.ts"}).IsValid() {
		t.Error("expected position with file to be valid")
	}
}
