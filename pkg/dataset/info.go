package dataset

import (
	"math"
	"strings"
	"time"

	"github.com/voxlab/blockforge/pkg/model"
)

const (
	infoVersion     = "1.0.0"
	infoDescription = "Blockforge annotation dataset"
	infoContributor = "Voxlab"
	infoURL         = "https://github.com/voxlab/blockforge"
)

// Info returns the metadata record tagging an exported dataset. It is a
// pure function of the current wall-clock time; everything else is fixed.
func Info() model.DatasetInfo {
	now := time.Now()
	return model.DatasetInfo{
		Year:        now.Year(),
		Version:     infoVersion,
		Description: infoDescription,
		Contributor: infoContributor,
		URL:         infoURL,
		DateCreated: now.Format("Jan-02-2006"),
	}
}

// NormalizeLabel lowercases a region label, removes every decimal digit and
// trims surrounding whitespace. Idempotent; "" stays "".
func NormalizeLabel(s string) string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// PolygonArea computes the area of a polygon with the shoelace formula,
// treating the vertex list as cyclic. Degenerate polygons (fewer than three
// vertices) yield 0.
func PolygonArea(p model.Polygon) float64 {
	if len(p) < 3 {
		return 0
	}

	var sum float64
	for i := range p {
		j := (i + 1) % len(p)
		sum += p[i].X*p[j].Y - p[i].Y*p[j].X
	}
	return math.Abs(sum) / 2
}
