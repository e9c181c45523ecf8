package models

// RiskModel is the exported form of the trained risk regressor. The
// offline pipeline writes it alongside its own binary model dump, as
// either a linear model or a boosted ensemble of binary decision trees.
type RiskModel struct {
	ModelType    string     `json:"model_type"`
	NumFeatures  int        `json:"num_features"`
	Intercept    float64    `json:"intercept"`
	Coefficients []float64  `json:"coefficients"`
	BaseScore    float64    `json:"base_score"`
	Trees        []RiskTree `json:"trees"`
}

const (
	ModelTypeLinear = "linear"
	ModelTypeGBTree = "gbtree"
)

// Arity is the number of input features the model expects.
func (m *RiskModel) Arity() int {
	if m.NumFeatures > 0 {
		return m.NumFeatures
	}
	if m.ModelType == ModelTypeLinear {
		return len(m.Coefficients)
	}
	arity := 0
	for _, tree := range m.Trees {
		for _, n := range tree.Nodes {
			if n.Feature+1 > arity {
				arity = n.Feature + 1
			}
		}
	}
	return arity
}

// RiskTree is one regression tree. Nodes index into the Nodes slice;
// node 0 is the root.
type RiskTree struct {
	Nodes []RiskTreeNode `json:"nodes"`
}

// RiskTreeNode is a split (Feature >= 0) or a leaf (Feature == -1).
// Rows with row[Feature] < Threshold descend to Yes, otherwise to No.
type RiskTreeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Yes       int     `json:"yes"`
	No        int     `json:"no"`
	Value     float64 `json:"value"`
}

// IsLeaf reports whether the node carries a leaf value.
func (n RiskTreeNode) IsLeaf() bool { return n.Feature < 0 }

// ModelMeta declares the feature column order the risk model was
// trained with.
type ModelMeta struct {
	FeatureCols []string `json:"feature_cols"`
}
