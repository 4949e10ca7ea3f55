package types

// NumFeatures is the number of measurements in a water sample.
const NumFeatures = 9

// FeatureNames lists the JSON keys of a water sample in the fixed order the
// classifier input row is built in.
var FeatureNames = [NumFeatures]string{
	"ph",
	"Hardness",
	"Solids",
	"Chloramines",
	"Sulfate",
	"Conductivity",
	"Organic_carbon",
	"Trihalomethanes",
	"Turbidity",
}

// FeatureIndex returns the position of name in FeatureNames.
func FeatureIndex(name string) (int, bool) {
	for i, n := range FeatureNames {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// WaterSample is one water-quality measurement. All nine fields are required.
// No range checks are applied: out-of-range values are passed to the model as-is.
type WaterSample struct {
	// example: 7.0
	Ph float64 `json:"ph" yaml:"ph" example:"7.0"`
	// example: 150.0
	Hardness float64 `json:"Hardness" yaml:"Hardness" example:"150.0"`
	// example: 20000.0
	Solids float64 `json:"Solids" yaml:"Solids" example:"20000.0"`
	// example: 7.5
	Chloramines float64 `json:"Chloramines" yaml:"Chloramines" example:"7.5"`
	// example: 330.0
	Sulfate float64 `json:"Sulfate" yaml:"Sulfate" example:"330.0"`
	// example: 420.0
	Conductivity float64 `json:"Conductivity" yaml:"Conductivity" example:"420.0"`
	// example: 12.0
	OrganicCarbon float64 `json:"Organic_carbon" yaml:"Organic_carbon" example:"12.0"`
	// example: 70.0
	Trihalomethanes float64 `json:"Trihalomethanes" yaml:"Trihalomethanes" example:"70.0"`
	// example: 4.0
	Turbidity float64 `json:"Turbidity" yaml:"Turbidity" example:"4.0"`
}

// Row returns the sample's values in FeatureNames order.
func (s WaterSample) Row() [NumFeatures]float64 {
	return [NumFeatures]float64{
		s.Ph,
		s.Hardness,
		s.Solids,
		s.Chloramines,
		s.Sulfate,
		s.Conductivity,
		s.OrganicCarbon,
		s.Trihalomethanes,
		s.Turbidity,
	}
}

// SetFeature assigns v to the field at index i of FeatureNames.
func (s *WaterSample) SetFeature(i int, v float64) {
	switch i {
	case 0:
		s.Ph = v
	case 1:
		s.Hardness = v
	case 2:
		s.Solids = v
	case 3:
		s.Chloramines = v
	case 4:
		s.Sulfate = v
	case 5:
		s.Conductivity = v
	case 6:
		s.OrganicCarbon = v
	case 7:
		s.Trihalomethanes = v
	case 8:
		s.Turbidity = v
	}
}

// ModelInfo describes the loaded model artifact.
type ModelInfo struct {
	// Model name from the artifact, or the file base name.
	// example: water-potability-rf
	Name string `json:"name" yaml:"name" example:"water-potability-rf"`
	// Free-form artifact version.
	// example: 2024-05
	Version string `json:"version,omitempty" yaml:"version,omitempty" example:"2024-05"`
	// Classifier family.
	// example: random_forest
	Kind string `json:"kind" yaml:"kind" example:"random_forest"`
	// Column order expected by the classifier.
	Features []string `json:"features" yaml:"features"`
	// Absolute path the artifact was loaded from.
	// example: /srv/hydrocore/model.json
	Path string `json:"path,omitempty" yaml:"path,omitempty" example:"/srv/hydrocore/model.json"`
	// Hex SHA-256 of the artifact bytes.
	SHA256 string `json:"sha256,omitempty" yaml:"sha256,omitempty"`
	// Number of trees (tree kinds only).
	// example: 100
	Trees int `json:"trees,omitempty" yaml:"trees,omitempty" example:"100"`
	// Load time in unix seconds.
	// example: 1700000000
	LoadedAt int64 `json:"loaded_at_unix" yaml:"loaded_at_unix" example:"1700000000"`
}
