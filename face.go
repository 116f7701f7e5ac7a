package multires

import "fmt"

// Face identifies one of the six cube faces. The order matches what the
// viewer expects: front, back, up, down, left, right.
type Face int

const (
	FaceFront Face = iota
	FaceBack
	FaceUp
	FaceDown
	FaceLeft
	FaceRight

	FaceCount = 6
)

var faceLetters = [FaceCount]byte{'f', 'b', 'u', 'd', 'l', 'r'}

// Letter returns the one-letter symbol used in tile and fallback filenames.
func (f Face) Letter() string {
	return string(faceLetters[f])
}

func (f Face) String() string {
	switch f {
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceUp:
		return "up"
	case FaceDown:
		return "down"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	}
	return fmt.Sprintf("Face(%d)", int(f))
}

// FaceOfFile maps a face file name to its cube face by the leading letter.
// The mapping is case-sensitive; a name that matches no face is an
// invalid-input error rather than a silent skip.
func FaceOfFile(name string) (Face, error) {
	if name == "" {
		return 0, invalidInputf("empty face file name")
	}
	for i := range faceLetters {
		if name[0] == faceLetters[i] {
			return Face(i), nil
		}
	}
	return 0, invalidInputf("the face %s does not start with one of the letters f, b, u, d, l, r", name)
}
