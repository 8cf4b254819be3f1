package salary

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Model is a random forest regressor over job feature vectors. Trees are
// grown on bootstrap samples with random feature subsets and predictions
// are averaged, which keeps the estimate robust to nonlinear skill/salary
// interactions without any feature engineering.
type Model struct {
	NumFeatures int    `json:"num_features"`
	Trees       []Tree `json:"trees"`
}

type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Node is one split or leaf; children are indices into the tree's node
// slice so the whole model serializes as plain JSON.
type Node struct {
	Leaf      bool    `json:"leaf"`
	Value     float64 `json:"value,omitempty"`
	Feature   int     `json:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Left      int     `json:"left,omitempty"`
	Right     int     `json:"right,omitempty"`
}

type TrainConfig struct {
	Trees       int
	MaxDepth    int
	MinLeafSize int
	Seed        int64
}

func (c TrainConfig) withDefaults() TrainConfig {
	if c.Trees <= 0 {
		c.Trees = 100
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = 12
	}
	if c.MinLeafSize <= 0 {
		c.MinLeafSize = 2
	}
	if c.Seed == 0 {
		c.Seed = 42
	}
	return c
}

// Train fits the forest on the full corpus of (features, label) pairs.
// Training is deterministic for a fixed seed.
func Train(features [][]float64, labels []float64, cfg TrainConfig) (*Model, error) {
	if len(features) == 0 {
		return nil, errors.New("empty training set")
	}
	if len(features) != len(labels) {
		return nil, fmt.Errorf("features/labels length mismatch: %d vs %d", len(features), len(labels))
	}
	numFeatures := len(features[0])
	if numFeatures == 0 {
		return nil, errors.New("zero-width feature vectors")
	}
	for i, f := range features {
		if len(f) != numFeatures {
			return nil, fmt.Errorf("row %d has %d features, want %d", i, len(f), numFeatures)
		}
	}

	cfg = cfg.withDefaults()
	rng := rand.New(rand.NewSource(cfg.Seed))

	// Feature subset size per split, sqrt as usual for forests.
	subset := int(math.Sqrt(float64(numFeatures)))
	if subset < 1 {
		subset = 1
	}

	m := &Model{NumFeatures: numFeatures, Trees: make([]Tree, 0, cfg.Trees)}
	for t := 0; t < cfg.Trees; t++ {
		idx := make([]int, len(features))
		for i := range idx {
			idx[i] = rng.Intn(len(features))
		}
		b := &treeBuilder{
			features:    features,
			labels:      labels,
			minLeaf:     cfg.MinLeafSize,
			maxDepth:    cfg.MaxDepth,
			subsetSize:  subset,
			numFeatures: numFeatures,
			rng:         rng,
		}
		b.grow(idx, 0)
		m.Trees = append(m.Trees, Tree{Nodes: b.nodes})
	}
	return m, nil
}

// Predict averages the per-tree predictions for one feature vector. The
// caller is responsible for checking the vector width first.
func (m *Model) Predict(features []float64) float64 {
	if m == nil || len(m.Trees) == 0 {
		return 0
	}
	var sum float64
	for _, t := range m.Trees {
		sum += t.predict(features)
	}
	return sum / float64(len(m.Trees))
}

func (t Tree) predict(features []float64) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Leaf {
			return n.Value
		}
		if features[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

type treeBuilder struct {
	features    [][]float64
	labels      []float64
	minLeaf     int
	maxDepth    int
	subsetSize  int
	numFeatures int
	rng         *rand.Rand
	nodes       []Node
}

// grow appends the subtree for idx and returns its root node index.
func (b *treeBuilder) grow(idx []int, depth int) int {
	if depth >= b.maxDepth || len(idx) < 2*b.minLeaf || b.pure(idx) {
		return b.leaf(idx)
	}

	feature, threshold, ok := b.bestSplit(idx)
	if !ok {
		return b.leaf(idx)
	}

	var left, right []int
	for _, i := range idx {
		if b.features[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < b.minLeaf || len(right) < b.minLeaf {
		return b.leaf(idx)
	}

	self := len(b.nodes)
	b.nodes = append(b.nodes, Node{Feature: feature, Threshold: threshold})
	l := b.grow(left, depth+1)
	r := b.grow(right, depth+1)
	b.nodes[self].Left = l
	b.nodes[self].Right = r
	return self
}

func (b *treeBuilder) leaf(idx []int) int {
	var sum float64
	for _, i := range idx {
		sum += b.labels[i]
	}
	v := 0.0
	if len(idx) > 0 {
		v = sum / float64(len(idx))
	}
	b.nodes = append(b.nodes, Node{Leaf: true, Value: v})
	return len(b.nodes) - 1
}

func (b *treeBuilder) pure(idx []int) bool {
	for i := 1; i < len(idx); i++ {
		if b.labels[idx[i]] != b.labels[idx[0]] {
			return false
		}
	}
	return true
}

// bestSplit scans a random feature subset for the split minimizing the
// summed squared error of the two sides.
func (b *treeBuilder) bestSplit(idx []int) (feature int, threshold float64, ok bool) {
	candidates := b.rng.Perm(b.numFeatures)
	if len(candidates) > b.subsetSize {
		candidates = candidates[:b.subsetSize]
	}

	bestSSE := math.Inf(1)
	order := make([]int, len(idx))

	for _, f := range candidates {
		copy(order, idx)
		sort.Slice(order, func(i, j int) bool {
			return b.features[order[i]][f] < b.features[order[j]][f]
		})

		var sumL, sqL float64
		sumR, sqR := 0.0, 0.0
		for _, i := range order {
			y := b.labels[i]
			sumR += y
			sqR += y * y
		}

		for pos := 1; pos < len(order); pos++ {
			y := b.labels[order[pos-1]]
			sumL += y
			sqL += y * y
			sumR -= y
			sqR -= y * y

			lo := b.features[order[pos-1]][f]
			hi := b.features[order[pos]][f]
			if lo == hi {
				continue
			}
			if pos < b.minLeaf || len(order)-pos < b.minLeaf {
				continue
			}

			nL, nR := float64(pos), float64(len(order)-pos)
			sse := (sqL - sumL*sumL/nL) + (sqR - sumR*sumR/nR)
			if sse < bestSSE {
				bestSSE = sse
				feature = f
				threshold = (lo + hi) / 2
				ok = true
			}
		}
	}
	return feature, threshold, ok
}
