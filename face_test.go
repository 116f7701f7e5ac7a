package multires

import (
	"errors"
	"testing"
)

func TestFaceOfFile(t *testing.T) {
	tests := []struct {
		name    string
		exp     Face
		expFail bool
	}{
		{"front.jpg", FaceFront, false},
		{"b.png", FaceBack, false},
		{"up.tif", FaceUp, false},
		{"down.webp", FaceDown, false},
		{"left.png", FaceLeft, false},
		{"r0.jpg", FaceRight, false},
		{"x.png", 0, true},
		{"F.png", 0, true}, // case-sensitive
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face, err := FaceOfFile(tt.name)
			if tt.expFail {
				var invalid *InvalidInputError
				if !errors.As(err, &invalid) {
					t.Errorf("FaceOfFile(%q) err = %v, want InvalidInputError", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FaceOfFile(%q) err = %v", tt.name, err)
			}
			if face != tt.exp {
				t.Errorf("FaceOfFile(%q) = %v, want %v", tt.name, face, tt.exp)
			}
		})
	}
}

func TestFaceLetters(t *testing.T) {
	letters := ""
	for face := range Face(FaceCount) {
		letters += face.Letter()
	}
	if letters != "fbudlr" {
		t.Errorf("face letters = %q, want %q", letters, "fbudlr")
	}
}
