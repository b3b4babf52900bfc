package puzzle

// Scene is the rendering collaborator a puzzle drives. Implementations
// apply world-axis rotations to piece objects; the engine never reads
// them back.
type Scene interface {
	// RotatePiece rotates one piece about a world-space unit axis by delta
	// radians, on top of its current orientation.
	RotatePiece(cat Category, piece int, axis Vec3, delta float64)

	// ResetPieces restores every piece to its home orientation.
	ResetPieces()
}

// NopScene discards all rotations. Used by headless runs and tests.
type NopScene struct{}

func (NopScene) RotatePiece(Category, int, Vec3, float64) {}
func (NopScene) ResetPieces()                             {}

// PieceInfo describes a physical piece for a renderer.
type PieceInfo struct {
	Category Category
	Index    int
	Name     string // face letters of its stickers, e.g. "UFR"
	Home     Vec3   // solved position
}

// faceNormals maps face letters to outward normals.
var faceNormals = map[rune]Vec3{
	'U': {0, 1, 0},
	'D': {0, -1, 0},
	'F': {0, 0, 1},
	'B': {0, 0, -1},
	'R': {1, 0, 0},
	'L': {-1, 0, 0},
}

// FaceNormal returns the outward normal of a face letter.
func FaceNormal(face rune) (Vec3, bool) {
	v, ok := faceNormals[face]
	return v, ok
}

// NamedPieces builds piece descriptions for cat from sticker names. The
// home position of each piece is the sum of its face normals.
func NamedPieces(cat Category, names ...string) []PieceInfo {
	out := make([]PieceInfo, len(names))
	for i, name := range names {
		var home Vec3
		for _, r := range name {
			home = home.Add(faceNormals[r])
		}
		out[i] = PieceInfo{Category: cat, Index: i, Name: name, Home: home}
	}
	return out
}
