package viewports

// Vec2 is a position or size in screen coordinates.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(other Vec2) Vec2 { return Vec2{X: v.X + other.X, Y: v.Y + other.Y} }
func (v Vec2) Mul(s float32) Vec2  { return Vec2{X: v.X * s, Y: v.Y * s} }

// Vec4 holds a clip rectangle as (left, top, right, bottom) in X, Y, Z, W.
type Vec4 struct {
	X, Y, Z, W float32
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y float32
	W, H float32
}

// RectOf builds the rectangle at pos with the given size.
func RectOf(pos, size Vec2) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive, so adjacent monitors never both claim a point.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func (r Rect) Center() Vec2 { return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// RGBA packs a color as 0xAABBGGRR, the byte order DrawVert.Col is
// uploaded in.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}
