package model

// Point is a 2D polygon vertex
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polygon is an ordered, cyclic sequence of vertices. Index access past the
// last vertex wraps around to the first.
type Polygon []Point

// DatasetInfo is the COCO "info" record attached to every exported dataset
type DatasetInfo struct {
	Year        int    `json:"year"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Contributor string `json:"contributor"`
	URL         string `json:"url"`
	DateCreated string `json:"date_created"`
}

// Image is a COCO image entry
type Image struct {
	ID       int    `json:"id"`
	FileName string `json:"file_name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// Annotation is a COCO annotation entry. Segmentation holds one flattened
// [x0, y0, x1, y1, ...] vertex list per polygon.
type Annotation struct {
	ID           int         `json:"id"`
	ImageID      int         `json:"image_id"`
	CategoryID   int         `json:"category_id"`
	Segmentation [][]float64 `json:"segmentation"`
	Area         float64     `json:"area"`
	BBox         []float64   `json:"bbox"`
	IsCrowd      int         `json:"iscrowd"`
}

// Category is a COCO category entry
type Category struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Supercategory string `json:"supercategory,omitempty"`
}

// Dataset is a complete COCO-style dataset document
type Dataset struct {
	Info        DatasetInfo   `json:"info"`
	Images      []*Image      `json:"images"`
	Annotations []*Annotation `json:"annotations"`
	Categories  []*Category   `json:"categories"`
}

// LabeledImage is the exporter's input: an image with labeled polygon regions
type LabeledImage struct {
	FileName string           `json:"file_name"`
	Width    int              `json:"width"`
	Height   int              `json:"height"`
	Regions  []*LabeledRegion `json:"regions"`
}

// LabeledRegion is a single labeled polygon on an image
type LabeledRegion struct {
	Label   string  `json:"label"`
	Polygon Polygon `json:"polygon"`
}
