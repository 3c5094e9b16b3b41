package dataset

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/voxlab/blockforge/pkg/adapter"
	"github.com/voxlab/blockforge/pkg/model"
	"github.com/voxlab/blockforge/pkg/utils/logging"
)

// ExportInput bundles everything a dataset build needs. Config and Policy
// are optional.
type ExportInput struct {
	Images []*model.LabeledImage
	Config *Config
	Policy *Policy
}

// Export builds a COCO-style dataset from labeled images. Regions with an
// empty normalized label or a policy rejection are skipped with a warning;
// only policy evaluation failures abort the export.
func Export(ctx context.Context, input ExportInput) (*model.Dataset, error) {
	logger := logging.From(ctx)

	info := Info()
	if input.Config != nil {
		input.Config.apply(&info)
	}

	ds := &model.Dataset{
		Info:        info,
		Images:      []*model.Image{},
		Annotations: []*model.Annotation{},
		Categories:  []*model.Category{},
	}

	categories := make(map[string]*model.Category)
	annotationID := 1

	for i, img := range input.Images {
		imageID := i + 1
		ds.Images = append(ds.Images, &model.Image{
			ID:       imageID,
			FileName: img.FileName,
			Width:    img.Width,
			Height:   img.Height,
		})

		for _, region := range img.Regions {
			label := NormalizeLabel(region.Label)
			if label == "" {
				logger.Warn("region label is empty after normalization, skipping",
					"file", img.FileName, "label", region.Label)
				continue
			}

			area := PolygonArea(region.Polygon)

			if input.Policy != nil {
				allowed, err := input.Policy.Allow(ctx, map[string]any{
					"file_name": img.FileName,
					"label":     label,
					"area":      area,
					"vertices":  len(region.Polygon),
				})
				if err != nil {
					return nil, goerr.Wrap(err, "export policy evaluation failed",
						goerr.V("file", img.FileName), goerr.V("label", label))
				}
				if !allowed {
					logger.Warn("region rejected by export policy",
						"file", img.FileName, "label", label)
					continue
				}
			}

			cat, ok := categories[label]
			if !ok {
				cat = &model.Category{
					ID:            len(categories) + 1,
					Name:          label,
					Supercategory: input.Config.supercategory(label),
				}
				categories[label] = cat
				ds.Categories = append(ds.Categories, cat)
			}

			ds.Annotations = append(ds.Annotations, &model.Annotation{
				ID:           annotationID,
				ImageID:      imageID,
				CategoryID:   cat.ID,
				Segmentation: [][]float64{flatten(region.Polygon)},
				Area:         area,
				BBox:         boundingBox(region.Polygon),
				IsCrowd:      0,
			})
			annotationID++
		}
	}

	return ds, nil
}

// flatten turns a polygon into the COCO [x0, y0, x1, y1, ...] form
func flatten(p model.Polygon) []float64 {
	out := make([]float64, 0, len(p)*2)
	for _, v := range p {
		out = append(out, v.X, v.Y)
	}
	return out
}

// boundingBox returns the COCO [x, y, width, height] box of a polygon
func boundingBox(p model.Polygon) []float64 {
	if len(p) == 0 {
		return []float64{0, 0, 0, 0}
	}

	minX, minY := p[0].X, p[0].Y
	maxX, maxY := p[0].X, p[0].Y
	for _, v := range p[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	return []float64{minX, minY, maxX - minX, maxY - minY}
}

// LoadImages reads the exporter's input file: a JSON array of labeled images
func LoadImages(path string) ([]*model.LabeledImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read annotations file", goerr.V("path", path))
	}

	var images []*model.LabeledImage
	if err := json.Unmarshal(data, &images); err != nil {
		return nil, goerr.Wrap(err, "failed to parse annotations file", goerr.V("path", path))
	}

	return images, nil
}

// WriteFile serializes a dataset as indented JSON
func WriteFile(ds *model.Dataset, path string) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to serialize dataset")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return goerr.Wrap(err, "failed to write dataset file", goerr.V("path", path))
	}

	return nil
}

// Upload streams a dataset document through a storage adapter
func Upload(ctx context.Context, st adapter.Storage, key string, ds *model.Dataset) error {
	w, err := st.Put(ctx, key)
	if err != nil {
		return goerr.Wrap(err, "failed to open storage writer", goerr.V("key", key))
	}

	if err := json.NewEncoder(w).Encode(ds); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to encode dataset to storage", goerr.V("key", key))
	}

	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize storage upload", goerr.V("key", key))
	}

	return nil
}
