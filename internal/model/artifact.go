package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/Vireya-Hydrocore/hydrocore-api-machine-learning/pkg/types"
)

// Kind names a classifier family.
type Kind string

const (
	KindDecisionTree       Kind = "decision_tree"
	KindRandomForest       Kind = "random_forest"
	KindLogisticRegression Kind = "logistic_regression"
)

// DefaultThreshold is the class-1 probability cut-off when an artifact sets none.
const DefaultThreshold = 0.5

// Artifact is the serialized classifier.
type Artifact struct {
	Name     string   `json:"name" yaml:"name" toml:"name"`
	Version  string   `json:"version" yaml:"version" toml:"version"`
	Kind     Kind     `json:"kind" yaml:"kind" toml:"kind"`
	Features []string `json:"features" yaml:"features" toml:"features"`
	// Scaler, when set, standardizes every column before the classifier sees it.
	Scaler *Scaler `json:"scaler,omitempty" yaml:"scaler,omitempty" toml:"scaler,omitempty"`
	// Trees is used by decision_tree (exactly one) and random_forest (one or more).
	Trees []Tree `json:"trees,omitempty" yaml:"trees,omitempty" toml:"trees,omitempty"`
	// Coefficients and Intercept are used by logistic_regression.
	Coefficients []float64 `json:"coefficients,omitempty" yaml:"coefficients,omitempty" toml:"coefficients,omitempty"`
	Intercept    float64   `json:"intercept,omitempty" yaml:"intercept,omitempty" toml:"intercept,omitempty"`
	// Threshold on P(class 1); a label is 1 iff the probability is strictly greater.
	Threshold *float64 `json:"threshold,omitempty" yaml:"threshold,omitempty" toml:"threshold,omitempty"`
}

// Scaler holds per-column standardization parameters: (x - mean) / scale.
type Scaler struct {
	Mean  []float64 `json:"mean" yaml:"mean" toml:"mean"`
	Scale []float64 `json:"scale" yaml:"scale" toml:"scale"`
}

// Tree is a binary decision tree stored as a flat node array rooted at index 0.
type Tree struct {
	Nodes []Node `json:"nodes" yaml:"nodes" toml:"nodes"`
}

// Node is either a split (go Left when x[Feature] <= Threshold) or a leaf whose
// Value is the probability of class 1.
type Node struct {
	IsLeaf    bool    `json:"is_leaf,omitempty" yaml:"is_leaf,omitempty" toml:"is_leaf,omitempty"`
	Feature   int     `json:"feature,omitempty" yaml:"feature,omitempty" toml:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty" yaml:"threshold,omitempty" toml:"threshold,omitempty"`
	Left      int     `json:"left,omitempty" yaml:"left,omitempty" toml:"left,omitempty"`
	Right     int     `json:"right,omitempty" yaml:"right,omitempty" toml:"right,omitempty"`
	Value     float64 `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
}

// Decode parses an artifact based on the extension of path.
// Supports: .json, .yaml/.yml, .toml. Unknown keys are rejected.
func Decode(path string, b []byte) (Artifact, error) {
	var a Artifact
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&a); err != nil {
			return a, fmt.Errorf("decode json artifact: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&a); err != nil {
			return a, fmt.Errorf("decode yaml artifact: %w", err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&a); err != nil {
			return a, fmt.Errorf("decode toml artifact: %w", err)
		}
	default:
		return a, unsupportedFormatError{ext: ext}
	}
	return a, nil
}

// ThresholdOrDefault returns the configured threshold or DefaultThreshold.
func (a Artifact) ThresholdOrDefault() float64 {
	if a.Threshold == nil {
		return DefaultThreshold
	}
	return *a.Threshold
}

// Validate checks that the artifact can be evaluated on any finite sample.
func (a Artifact) Validate() error {
	if err := validateFeatures(a.Features); err != nil {
		return err
	}
	if a.Threshold != nil {
		if t := *a.Threshold; math.IsNaN(t) || t < 0 || t >= 1 {
			return errInvalid(fmt.Sprintf("threshold %v outside [0,1)", t))
		}
	}
	if a.Scaler != nil {
		if err := a.Scaler.validate(); err != nil {
			return err
		}
	}
	switch a.Kind {
	case KindDecisionTree:
		if len(a.Trees) != 1 {
			return errInvalid(fmt.Sprintf("decision_tree needs exactly one tree, got %d", len(a.Trees)))
		}
	case KindRandomForest:
		if len(a.Trees) == 0 {
			return errInvalid("random_forest has no trees")
		}
	case KindLogisticRegression:
		if len(a.Coefficients) != types.NumFeatures {
			return errInvalid(fmt.Sprintf("logistic_regression needs %d coefficients, got %d", types.NumFeatures, len(a.Coefficients)))
		}
		for i, c := range a.Coefficients {
			if !finite(c) {
				return errInvalid(fmt.Sprintf("coefficient %d is not finite", i))
			}
		}
		if !finite(a.Intercept) {
			return errInvalid("intercept is not finite")
		}
		return nil
	case "":
		return errInvalid("kind is required")
	default:
		return errInvalid(fmt.Sprintf("unknown kind %q", a.Kind))
	}
	for i, t := range a.Trees {
		if err := t.validate(); err != nil {
			return fmt.Errorf("tree %d: %w", i, err)
		}
	}
	return nil
}

func validateFeatures(features []string) error {
	if len(features) != types.NumFeatures {
		return errInvalid(fmt.Sprintf("expected %d features, got %d", types.NumFeatures, len(features)))
	}
	seen := make(map[string]bool, len(features))
	for _, f := range features {
		if _, ok := types.FeatureIndex(f); !ok {
			return errInvalid(fmt.Sprintf("unknown feature %q", f))
		}
		if seen[f] {
			return errInvalid(fmt.Sprintf("duplicate feature %q", f))
		}
		seen[f] = true
	}
	return nil
}

func (s *Scaler) validate() error {
	if len(s.Mean) != types.NumFeatures || len(s.Scale) != types.NumFeatures {
		return errInvalid(fmt.Sprintf("scaler needs %d means and scales", types.NumFeatures))
	}
	for i := range s.Mean {
		if !finite(s.Mean[i]) || !finite(s.Scale[i]) || s.Scale[i] == 0 {
			return errInvalid(fmt.Sprintf("scaler column %d is degenerate", i))
		}
	}
	return nil
}

// validate enforces child indices strictly greater than the parent's, which
// rules out cycles and guarantees every walk ends on a leaf.
func (t Tree) validate() error {
	n := len(t.Nodes)
	if n == 0 {
		return errInvalid("tree has no nodes")
	}
	for i, nd := range t.Nodes {
		if nd.IsLeaf {
			if math.IsNaN(nd.Value) || nd.Value < 0 || nd.Value > 1 {
				return errInvalid(fmt.Sprintf("node %d: leaf value %v outside [0,1]", i, nd.Value))
			}
			continue
		}
		if nd.Feature < 0 || nd.Feature >= types.NumFeatures {
			return errInvalid(fmt.Sprintf("node %d: feature index %d out of range", i, nd.Feature))
		}
		if math.IsNaN(nd.Threshold) {
			return errInvalid(fmt.Sprintf("node %d: threshold is NaN", i))
		}
		if nd.Left <= i || nd.Left >= n || nd.Right <= i || nd.Right >= n {
			return errInvalid(fmt.Sprintf("node %d: children (%d,%d) out of range", i, nd.Left, nd.Right))
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
