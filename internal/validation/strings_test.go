package validation

import "testing"

func TestStringRequired(t *testing.T) {
	cases := []struct {
		name    string
		value   any
		min     int
		wantErr string
	}{
		{"nil", nil, 2, "Game title cannot be empty"},
		{"wrong type", 3.5, 2, "Game title must be a string"},
		{"bool", true, 2, "Game title must be a string"},
		{"too short", "X", 2, "Game title must be at least 2 characters"},
		{"multibyte too short", "é", 2, "Game title must be at least 2 characters"},
		{"whitespace only", "   ", 2, "Game title must be at least 2 characters"},
		{"padded short", " a ", 2, "Game title must be at least 2 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := String("Game title", tc.value, tc.min, false)
			if err == nil {
				t.Fatalf("expected error, got none")
			}
			if err.Error() != tc.wantErr {
				t.Fatalf("expected %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

func TestStringValid(t *testing.T) {
	got, err := String("Game title", "ok", 2, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != "ok" {
		t.Fatalf("expected ok, got %v", got)
	}
}

// Length rules count characters, not bytes: a one-character accented title is
// two bytes and a five-character CJK description is fifteen, but neither meets
// its minimum.
func TestStringCountsCharacters(t *testing.T) {
	_, err := String("Game title", "é", 2, false)
	if err == nil {
		t.Fatalf("one-character title passed min length 2")
	}
	if err.Error() != "Game title must be at least 2 characters" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	if _, err := String("Description", "ゲームです", 10, true); err == nil {
		t.Fatalf("five-character description passed min length 10")
	}

	// values that meet the character count pass regardless of byte width
	got, err := String("Game title", "éé", 2, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != "éé" {
		t.Fatalf("value = %q", *got)
	}
	if _, err := String("Description", "ゲームですよ、どうぞ", 10, true); err != nil {
		t.Fatalf("ten-character description rejected: %v", err)
	}
}

// The validator trims only for the length check, the stored value keeps its
// padding.
func TestStringKeepsPadding(t *testing.T) {
	got, err := String("Game title", "  ab  ", 2, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != "  ab  " {
		t.Fatalf("expected padded value preserved, got %q", *got)
	}
}

func TestStringAllowNone(t *testing.T) {
	got, err := String("Description", nil, 10, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %q", *got)
	}

	if _, err := String("Description", "too short", 10, true); err == nil {
		t.Fatalf("expected length error for present value")
	} else if err.Error() != "Description must be at least 10 characters" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestErrorField(t *testing.T) {
	err := Errorf("Publisher name", "must be at least %d characters", 2)
	if err.Field != "Publisher name" {
		t.Fatalf("unexpected field: %q", err.Field)
	}
	if err.Message != "Publisher name must be at least 2 characters" {
		t.Fatalf("unexpected message: %q", err.Message)
	}
}
