package core

import "testing"

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, '@', ColorBrightYellow)
	cell := s.GetCell(3, 2)
	if cell.Rune != '@' || cell.Color != ColorBrightYellow {
		t.Errorf("GetCell(3,2) = %+v, expected '@' in bright yellow", cell)
	}

	// Out of bounds writes are ignored, reads return blanks
	s.SetCell(-1, 0, 'x', ColorRed)
	s.SetCell(10, 0, 'x', ColorRed)
	if got := s.GetCell(-1, 0); got.Rune != ' ' {
		t.Errorf("out-of-bounds GetCell = %+v, expected blank", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, '#')

	s.Resize(20, 10)
	if got := s.GetCell(2, 2).Rune; got != '#' {
		t.Errorf("after grow, cell (2,2) = %q, expected '#'", got)
	}

	s.Resize(3, 3)
	if got := s.GetCell(2, 2).Rune; got != '#' {
		t.Errorf("after shrink, cell (2,2) = %q, expected '#'", got)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawText(0, 0, "abcde")

	if got := s.Row(0); got != "abcde" {
		t.Errorf("Row(0) = %q, expected %q", got, "abcde")
	}
	if got := s.Row(7); got != "     " {
		t.Errorf("Row(7) = %q, expected all spaces", got)
	}
}
