package dataset_test

import (
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/voxlab/blockforge/pkg/dataset"
	"github.com/voxlab/blockforge/pkg/model"
)

func TestInfo(t *testing.T) {
	info := dataset.Info()

	gt.Equal(t, info.Version, "1.0.0")
	gt.Equal(t, info.Year, time.Now().Year())
	gt.Equal(t, len(strings.Split(info.DateCreated, "-")), 3)
	gt.S(t, info.URL).Contains("blockforge")
}

func TestNormalizeLabel(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"mixed case with digits and space", "Room42 ", "room"},
		{"already normalized", "sheep", "sheep"},
		{"digits only", "1234", ""},
		{"empty", "", ""},
		{"inner digits", "zombie2pigman", "zombiepigman"},
		{"surrounding whitespace", "  House  ", "house"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, dataset.NormalizeLabel(tc.input), tc.expected)
		})
	}
}

func TestNormalizeLabelIdempotent(t *testing.T) {
	inputs := []string{"Room42 ", "Wolf 7", " spruce PLANKS 19 "}
	for _, s := range inputs {
		once := dataset.NormalizeLabel(s)
		gt.Equal(t, dataset.NormalizeLabel(once), once)
	}
}

func TestPolygonArea(t *testing.T) {
	rect := model.Polygon{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3},
	}
	gt.Equal(t, dataset.PolygonArea(rect), 12.0)

	triangle := model.Polygon{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3},
	}
	gt.Equal(t, dataset.PolygonArea(triangle), 6.0)
}

func TestPolygonAreaCyclicRotation(t *testing.T) {
	rect := model.Polygon{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3},
	}

	for shift := 1; shift < len(rect); shift++ {
		rotated := append(append(model.Polygon{}, rect[shift:]...), rect[:shift]...)
		gt.Equal(t, dataset.PolygonArea(rotated), 12.0)
	}
}

func TestPolygonAreaReversal(t *testing.T) {
	rect := model.Polygon{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3},
	}

	reversed := make(model.Polygon, 0, len(rect))
	for i := len(rect) - 1; i >= 0; i-- {
		reversed = append(reversed, rect[i])
	}
	gt.Equal(t, dataset.PolygonArea(reversed), 12.0)
}

func TestPolygonAreaDegenerate(t *testing.T) {
	gt.Equal(t, dataset.PolygonArea(nil), 0.0)
	gt.Equal(t, dataset.PolygonArea(model.Polygon{{X: 1, Y: 1}}), 0.0)
	gt.Equal(t, dataset.PolygonArea(model.Polygon{{X: 1, Y: 1}, {X: 2, Y: 2}}), 0.0)
}
