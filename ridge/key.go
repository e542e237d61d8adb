package ridge

// MaxVerts is the largest number of vertices a ridge can have: an
// (N-1)-simplex for the largest supported hull dimension N=5.
const MaxVerts = 4

// Key identifies a ridge by its sorted vertex-index tuple. Unused trailing
// slots (when the ridge has fewer than MaxVerts vertices, i.e. N<5) are -1,
// which can never collide with a real vertex index.
type Key [MaxVerts]int32

// NewKey builds a Key from a sorted, deduplicated slice of vertex indices.
// verts must have length <= MaxVerts; callers in this module never violate
// this since N<=5 throughout (spec §1).
func NewKey(verts []int32) Key {
	var k Key
	for i := range k {
		k[i] = -1
	}
	copy(k[:], verts)
	return k
}
