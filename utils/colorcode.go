package utils

import "math/rand"

// colorPalette is the fixed set of cosmetic flashcard colors.
var colorPalette = []string{
	"#EEF5D4",
	"#DEF2F3",
	"#DC758F",
	"#E3D3E4",
	"#00FFCD",
	"#E3B23C",
	"#ECFFF8",
	"#7F5A83",
	"#A188A6",
	"#EDEBD7",
	"#EBD4CB",
	"#DA9F93",
	"#B6465F",
	"#890620",
	"#48A9A6",
}

// RandomColorCode picks a color for a new flashcard.
func RandomColorCode() string {
	return colorPalette[rand.Intn(len(colorPalette))]
}

// IsPaletteColor reports whether code belongs to the fixed palette.
func IsPaletteColor(code string) bool {
	for _, c := range colorPalette {
		if c == code {
			return true
		}
	}
	return false
}
