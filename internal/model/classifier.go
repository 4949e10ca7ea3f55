package model

import "math"

// classifier maps one row, in artifact column order, to P(class 1).
type classifier interface {
	proba(x []float64) float64
}

type treeClassifier struct{ nodes []Node }

func (t treeClassifier) proba(x []float64) float64 {
	i := 0
	for {
		nd := t.nodes[i]
		if nd.IsLeaf {
			return nd.Value
		}
		if x[nd.Feature] <= nd.Threshold {
			i = nd.Left
		} else {
			i = nd.Right
		}
	}
}

// forestClassifier averages the leaf probabilities of its trees.
type forestClassifier []treeClassifier

func (f forestClassifier) proba(x []float64) float64 {
	var sum float64
	for _, t := range f {
		sum += t.proba(x)
	}
	return sum / float64(len(f))
}

type logisticClassifier struct {
	coef      []float64
	intercept float64
}

func (l logisticClassifier) proba(x []float64) float64 {
	z := l.intercept
	for i, c := range l.coef {
		z += c * x[i]
	}
	return 1 / (1 + math.Exp(-z))
}

type scaledClassifier struct {
	mean, scale []float64
	next        classifier
}

func (s scaledClassifier) proba(x []float64) float64 {
	y := make([]float64, len(x))
	for i := range x {
		y[i] = (x[i] - s.mean[i]) / s.scale[i]
	}
	return s.next.proba(y)
}

// newClassifier builds an evaluator from a validated artifact.
func newClassifier(a Artifact) classifier {
	var c classifier
	switch a.Kind {
	case KindLogisticRegression:
		c = logisticClassifier{coef: append([]float64(nil), a.Coefficients...), intercept: a.Intercept}
	case KindDecisionTree:
		c = treeClassifier{nodes: append([]Node(nil), a.Trees[0].Nodes...)}
	default:
		f := make(forestClassifier, len(a.Trees))
		for i, t := range a.Trees {
			f[i] = treeClassifier{nodes: append([]Node(nil), t.Nodes...)}
		}
		c = f
	}
	if a.Scaler != nil {
		c = scaledClassifier{
			mean:  append([]float64(nil), a.Scaler.Mean...),
			scale: append([]float64(nil), a.Scaler.Scale...),
			next:  c,
		}
	}
	return c
}
