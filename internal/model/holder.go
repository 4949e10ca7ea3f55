package model

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Vireya-Hydrocore/hydrocore-api-machine-learning/internal/common/fsutil"
	"github.com/Vireya-Hydrocore/hydrocore-api-machine-learning/pkg/types"
)

// DefaultPath is the artifact location used when none is configured,
// relative to the working directory.
const DefaultPath = "model.json"

// Holder is an immutable, loaded classifier. It is safe for concurrent use.
type Holder struct {
	info      types.ModelInfo
	clf       classifier
	threshold float64
	// cols[j] is the index in types.FeatureNames that feeds classifier column j.
	cols [types.NumFeatures]int
}

// Load reads, decodes and validates the artifact at path.
// A leading '~' is expanded to the user's home directory.
func Load(path string) (*Holder, error) {
	abs, err := fsutil.Resolve(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	a, err := Decode(abs, b)
	if err != nil {
		return nil, err
	}
	if a.Name == "" {
		a.Name = strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	}
	h, err := New(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", abs, err)
	}
	sum := sha256.Sum256(b)
	h.info.Path = abs
	h.info.SHA256 = hex.EncodeToString(sum[:])
	return h, nil
}

// New builds a Holder from an in-memory artifact.
func New(a Artifact) (*Holder, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	h := &Holder{
		clf:       newClassifier(a),
		threshold: a.ThresholdOrDefault(),
		info: types.ModelInfo{
			Name:     a.Name,
			Version:  a.Version,
			Kind:     string(a.Kind),
			Features: append([]string(nil), a.Features...),
			LoadedAt: time.Now().Unix(),
		},
	}
	if a.Kind != KindLogisticRegression {
		h.info.Trees = len(a.Trees)
	}
	for j, name := range a.Features {
		h.cols[j], _ = types.FeatureIndex(name)
	}
	return h, nil
}

// PredictProba returns the probability that s is potable.
func (h *Holder) PredictProba(s types.WaterSample) (float64, error) {
	row := s.Row()
	var x [types.NumFeatures]float64
	for j, src := range h.cols {
		v := row[src]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, nonFiniteInputError{feature: types.FeatureNames[src]}
		}
		x[j] = v
	}
	return h.clf.proba(x[:]), nil
}

// Predict returns 1 when s is predicted potable and 0 otherwise.
func (h *Holder) Predict(s types.WaterSample) (int, error) {
	p, err := h.PredictProba(s)
	if err != nil {
		return 0, err
	}
	if p > h.threshold {
		return 1, nil
	}
	return 0, nil
}

// Info returns metadata about the loaded artifact.
func (h *Holder) Info() types.ModelInfo {
	info := h.info
	info.Features = append([]string(nil), h.info.Features...)
	return info
}

// Ready reports whether a classifier is loaded.
func (h *Holder) Ready() bool { return h != nil && h.clf != nil }
