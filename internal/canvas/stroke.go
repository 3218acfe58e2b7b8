package canvas

import "math"

// strokeOutline expands polylines into fill polygons for a stroke of the
// given width: one quad per segment and a disc at every interior vertex,
// which yields round joins and butt caps. Every polygon is wound the same
// way so that overlaps accumulate instead of cancelling in the rasterizer.
func strokeOutline(lines []Polyline, width float64) [][]Point {
	if width <= 0 {
		return nil
	}
	hw := width / 2

	var polys [][]Point
	for _, l := range lines {
		pts := dedupe(l.Points)
		if len(pts) < 2 {
			continue
		}
		n := len(pts)
		for i := 0; i+1 < n; i++ {
			polys = append(polys, segmentQuad(pts[i], pts[i+1], hw))
		}
		if l.Closed && pts[0] != pts[n-1] {
			polys = append(polys, segmentQuad(pts[n-1], pts[0], hw))
		}

		// Joins.
		for i := 1; i+1 < n; i++ {
			polys = append(polys, disc(pts[i], hw))
		}
		if l.Closed {
			polys = append(polys, disc(pts[0], hw))
			if pts[0] != pts[n-1] {
				polys = append(polys, disc(pts[n-1], hw))
			}
		}
	}
	return polys
}

// segmentQuad returns the rectangle covering segment a-b at half width hw.
func segmentQuad(a, b Point, hw float64) []Point {
	n := b.Sub(a).Normalize().Perp().Mul(hw)
	return orient([]Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}

// disc approximates a circle with a polygon fine enough for its radius.
func disc(c Point, r float64) []Point {
	steps := int(math.Ceil(2 * math.Pi * r / 2))
	if steps < 8 {
		steps = 8
	}
	pts := make([]Point, steps)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(steps)
		pts[i] = Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	return orient(pts)
}

// orient reverses pts in place if needed so that its signed area is
// non-negative.
func orient(pts []Point) []Point {
	if signedArea(pts) < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return pts
}

func signedArea(pts []Point) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a / 2
}

// dedupe drops consecutive duplicate points.
func dedupe(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1].Distance(p) < 1e-9 {
			continue
		}
		out = append(out, p)
	}
	return out
}
