package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '■', ColorBrightYellow)

	cell := s.GetCell(3, 4)
	if cell.Rune != '■' {
		t.Errorf("GetCell(3, 4).Rune = %q, expected '■'", cell.Rune)
	}
	if cell.Color != ColorBrightYellow {
		t.Errorf("GetCell(3, 4).Color = %d, expected ColorBrightYellow", cell.Color)
	}

	// Out of bounds cell should be a blank default cell
	oob := s.GetCell(-1, -1)
	if oob.Rune != ' ' || oob.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected blank default cell", oob)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColored(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected blank default cell at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "hello")

	if got := strings.TrimRight(s.Row(1), " "); got != "  hello" {
		t.Errorf("Row(1) = %q, expected %q", got, "  hello")
	}

	// Text extending past the right edge is clipped
	s.DrawText(17, 2, "clip")
	if got := s.Row(2)[17:]; got != "cli" {
		t.Errorf("clipped text = %q, expected %q", got, "cli")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)

	s.DrawTextCentered(1, "abc")

	if got := strings.TrimRight(s.Row(1), " "); got != "    abc" {
		t.Errorf("Row(1) = %q, expected %q", got, "    abc")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawBox(NewRect(1, 1, 4, 3))

	if s.Get(1, 1) != '┌' || s.Get(4, 1) != '┐' {
		t.Error("DrawBox top corners wrong")
	}
	if s.Get(1, 3) != '└' || s.Get(4, 3) != '┘' {
		t.Error("DrawBox bottom corners wrong")
	}
	if s.Get(2, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("DrawBox edges wrong")
	}
	// Interior stays blank
	if s.Get(2, 2) != ' ' {
		t.Error("DrawBox should not fill the interior")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(3, 3, 'X')

	s.Resize(20, 20)

	if s.Width() != 20 || s.Height() != 20 {
		t.Errorf("after Resize: %dx%d, expected 20x20", s.Width(), s.Height())
	}
	if s.Get(3, 3) != 'X' {
		t.Error("Resize should preserve existing content")
	}

	// Shrinking clips content outside the new bounds
	s.Set(15, 15, 'Y')
	s.Resize(5, 5)
	if s.Get(3, 3) != 'X' {
		t.Error("Resize should preserve content inside the new bounds")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}
