package services

import (
	"fmt"
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"ace-models-api/models"
)

var defaultFeatureCols = []string{"avg_speed_mph", "trips_per_hour"}

var (
	predictionsServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ace_api_predictions_total",
		Help: "Total number of risk scores served.",
	})
	predictionsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ace_api_prediction_failures_total",
		Help: "Total number of failed risk score requests.",
	})
)

// Predictor wraps the loaded risk model and its metadata. Every call
// re-invokes the model; nothing is cached.
type Predictor struct {
	model *models.RiskModel
	meta  *models.ModelMeta
}

func NewPredictor(model *models.RiskModel, meta *models.ModelMeta) *Predictor {
	return &Predictor{model: model, meta: meta}
}

// Available reports whether a model was loaded at startup.
func (p *Predictor) Available() bool {
	return p.model != nil
}

// FeatureCols resolves the feature column order: the metadata's
// declared list when present, otherwise the fixed two-column fallback.
func (p *Predictor) FeatureCols() []string {
	if p.meta != nil && len(p.meta.FeatureCols) > 0 {
		return p.meta.FeatureCols
	}
	return defaultFeatureCols
}

// Predict scores a single observation. The feature row is assembled in
// the resolved column order, so metadata that reorders the two columns
// reorders the row. A column the inputs cannot satisfy, an arity
// mismatch with the model, or a non-finite score all fail rather than
// returning garbage.
func (p *Predictor) Predict(avgSpeedMPH, tripsPerHour float64) (float64, error) {
	if p.model == nil {
		predictionsFailed.Inc()
		return 0, ErrUnavailable
	}

	cols := p.FeatureCols()
	inputs := map[string]float64{
		"avg_speed_mph":  avgSpeedMPH,
		"trips_per_hour": tripsPerHour,
	}

	row := make([]float64, len(cols))
	for i, col := range cols {
		v, ok := inputs[col]
		if !ok {
			predictionsFailed.Inc()
			return 0, fmt.Errorf("no input for feature column %q", col)
		}
		row[i] = v
	}

	if arity := p.model.Arity(); arity != len(row) {
		predictionsFailed.Inc()
		return 0, fmt.Errorf("model expects %d features, resolved columns give %d", arity, len(row))
	}

	score, err := p.score(row)
	if err != nil {
		predictionsFailed.Inc()
		return 0, err
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		predictionsFailed.Inc()
		return 0, fmt.Errorf("model produced non-finite score %v", score)
	}

	predictionsServed.Inc()
	return score, nil
}

func (p *Predictor) score(row []float64) (float64, error) {
	switch p.model.ModelType {
	case models.ModelTypeLinear:
		x := mat.NewVecDense(len(row), row)
		w := mat.NewVecDense(len(p.model.Coefficients), p.model.Coefficients)
		return p.model.Intercept + mat.Dot(x, w), nil

	case models.ModelTypeGBTree:
		outputs := make([]float64, len(p.model.Trees))
		for i, tree := range p.model.Trees {
			leaf, err := evalTree(tree, row)
			if err != nil {
				return 0, fmt.Errorf("tree %d: %w", i, err)
			}
			outputs[i] = leaf
		}
		return p.model.BaseScore + floats.Sum(outputs), nil

	default:
		return 0, fmt.Errorf("unknown model type %q", p.model.ModelType)
	}
}

func evalTree(tree models.RiskTree, row []float64) (float64, error) {
	if len(tree.Nodes) == 0 {
		return 0, fmt.Errorf("empty tree")
	}
	idx := 0
	// Bounded walk so a malformed tree with a cycle cannot spin forever.
	for steps := 0; steps <= len(tree.Nodes); steps++ {
		node := tree.Nodes[idx]
		if node.IsLeaf() {
			return node.Value, nil
		}
		if node.Feature >= len(row) {
			return 0, fmt.Errorf("node %d references feature %d, row has %d", idx, node.Feature, len(row))
		}
		if row[node.Feature] < node.Threshold {
			idx = node.Yes
		} else {
			idx = node.No
		}
		if idx < 0 || idx >= len(tree.Nodes) {
			return 0, fmt.Errorf("node child index %d out of range", idx)
		}
	}
	return 0, fmt.Errorf("tree walk did not reach a leaf")
}
