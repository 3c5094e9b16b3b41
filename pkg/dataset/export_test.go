package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/voxlab/blockforge/pkg/dataset"
	"github.com/voxlab/blockforge/pkg/model"
)

func testImages() []*model.LabeledImage {
	return []*model.LabeledImage{
		{
			FileName: "scene_001.png",
			Width:    640,
			Height:   480,
			Regions: []*model.LabeledRegion{
				{
					Label: "Room42 ",
					Polygon: model.Polygon{
						{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3},
					},
				},
				{
					Label: "sheep",
					Polygon: model.Polygon{
						{X: 10, Y: 10}, {X: 14, Y: 10}, {X: 10, Y: 13},
					},
				},
			},
		},
		{
			FileName: "scene_002.png",
			Width:    640,
			Height:   480,
			Regions: []*model.LabeledRegion{
				{
					Label: "ROOM 7",
					Polygon: model.Polygon{
						{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 1, Y: 2},
					},
				},
			},
		},
	}
}

func TestExport(t *testing.T) {
	ctx := context.Background()

	ds, err := dataset.Export(ctx, dataset.ExportInput{Images: testImages()})
	gt.NoError(t, err)

	gt.Equal(t, len(ds.Images), 2)
	gt.Equal(t, len(ds.Annotations), 3)
	gt.Equal(t, ds.Info.Version, "1.0.0")

	// "Room42 " and "ROOM 7" normalize to the same category
	gt.Equal(t, len(ds.Categories), 2)
	gt.Equal(t, ds.Categories[0].Name, "room")
	gt.Equal(t, ds.Categories[1].Name, "sheep")

	first := ds.Annotations[0]
	gt.Equal(t, first.ImageID, 1)
	gt.Equal(t, first.CategoryID, 1)
	gt.Equal(t, first.Area, 12.0)
	gt.Equal(t, first.BBox, []float64{0, 0, 4, 3})
	gt.Equal(t, first.Segmentation, [][]float64{{0, 0, 4, 0, 4, 3, 0, 3}})

	third := ds.Annotations[2]
	gt.Equal(t, third.ImageID, 2)
	gt.Equal(t, third.CategoryID, 1)
	gt.Equal(t, third.Area, 2.0)
}

func TestExportSkipsEmptyLabels(t *testing.T) {
	ctx := context.Background()

	images := []*model.LabeledImage{
		{
			FileName: "scene.png",
			Regions: []*model.LabeledRegion{
				{Label: "1234 ", Polygon: model.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}},
				{Label: "wolf", Polygon: model.Polygon{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}}},
			},
		},
	}

	ds, err := dataset.Export(ctx, dataset.ExportInput{Images: images})
	gt.NoError(t, err)

	gt.Equal(t, len(ds.Annotations), 1)
	gt.Equal(t, len(ds.Categories), 1)
	gt.Equal(t, ds.Categories[0].Name, "wolf")
}

func TestExportPolicy(t *testing.T) {
	ctx := context.Background()

	policy, err := dataset.NewPolicy(ctx, map[string]string{
		"export.rego": `package export

default allow := false

allow if {
	input.area >= 3
}
`,
	})
	gt.NoError(t, err)

	ds, err := dataset.Export(ctx, dataset.ExportInput{
		Images: testImages(),
		Policy: policy,
	})
	gt.NoError(t, err)

	// The 2.0 area region of scene_002 is rejected by the policy
	gt.Equal(t, len(ds.Annotations), 2)
	for _, ann := range ds.Annotations {
		gt.Equal(t, ann.ImageID, 1)
	}
}

func TestExportConfigOverrides(t *testing.T) {
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "export.yml")
	raw := `description: Indoor scenes
contributor: Annotation Team
supercategories:
  room: structure
`
	gt.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	cfg, err := dataset.LoadConfig(path)
	gt.NoError(t, err)
	gt.Equal(t, cfg.Description, "Indoor scenes")

	ds, err := dataset.Export(ctx, dataset.ExportInput{
		Images: testImages(),
		Config: cfg,
	})
	gt.NoError(t, err)

	gt.Equal(t, ds.Info.Description, "Indoor scenes")
	gt.Equal(t, ds.Info.Contributor, "Annotation Team")
	gt.Equal(t, ds.Info.Version, "1.0.0")
	gt.Equal(t, ds.Categories[0].Supercategory, "structure")
}

func TestWriteFile(t *testing.T) {
	ctx := context.Background()

	ds, err := dataset.Export(ctx, dataset.ExportInput{Images: testImages()})
	gt.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dataset.json")
	gt.NoError(t, dataset.WriteFile(ds, path))

	data, err := os.ReadFile(path)
	gt.NoError(t, err)
	gt.S(t, string(data)).Contains(`"date_created"`)
	gt.S(t, string(data)).Contains(`"iscrowd"`)
}
