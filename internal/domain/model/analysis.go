package model

// Analysis is the AI-derived descriptive metadata attached to a blob by the
// vision capability. The whole payload is optional on a Blob and is merged
// in after ingestion has already completed.
type Analysis struct {
	Title          string         `bson:"title" json:"title"`
	Description    string         `bson:"description" json:"description"`
	Mood           string         `bson:"mood" json:"mood"`
	TimeOfDay      string         `bson:"time_of_day" json:"timeOfDay"`
	Composition    string         `bson:"composition" json:"composition"`
	DominantColors []string       `bson:"dominant_colors" json:"dominantColors"`
	AccentColors   []string       `bson:"accent_colors" json:"accentColors"`
	Directionality Directionality `bson:"directionality" json:"directionality"`
	Subjects       []Subject      `bson:"subjects" json:"subjects"`
	Regions        []Region       `bson:"regions" json:"regions"`
}

// Directionality scores the visual flow of the image in [-1.0, 1.0],
// negative meaning leftward.
type Directionality struct {
	Score     float64 `bson:"score" json:"score"`
	Reasoning string  `bson:"reasoning" json:"reasoning"`
}

// Subject describes one detected identity with structural (stable) and
// transient appearance attributes.
type Subject struct {
	Label      string   `bson:"label" json:"label"`
	Structural []string `bson:"structural" json:"structural"`
	Transient  []string `bson:"transient" json:"transient"`
}

// Region is a ranked salient area with a normalized bounding box.
type Region struct {
	Box  Box `bson:"box" json:"box"`
	Rank int `bson:"rank" json:"rank"`
}

// Box coordinates are normalized to [0, 1] relative to the source image.
type Box struct {
	X      float64 `bson:"x" json:"x"`
	Y      float64 `bson:"y" json:"y"`
	Width  float64 `bson:"width" json:"width"`
	Height float64 `bson:"height" json:"height"`
}
