package utils

import (
	"regexp"
	"testing"
)

func TestRandomColorCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := RandomColorCode()
		if !IsPaletteColor(code) {
			t.Fatalf("color %q is not in the palette", code)
		}
	}
}

func TestGenerateHexToken(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]+$`)

	for _, size := range []int{10, 32} {
		token, err := GenerateHexToken(size)
		if err != nil {
			t.Fatalf("GenerateHexToken(%d) failed: %v", size, err)
		}
		if len(token) != 2*size {
			t.Fatalf("GenerateHexToken(%d) returned %d chars, want %d", size, len(token), 2*size)
		}
		if !pattern.MatchString(token) {
			t.Fatalf("token %q is not hex", token)
		}
	}

	a, _ := GenerateHexToken(32)
	b, _ := GenerateHexToken(32)
	if a == b {
		t.Fatal("two generated tokens are identical")
	}
}
