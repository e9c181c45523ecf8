package services

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sort"

	"ace-models-api/models"
)

// Artifact file names written by the offline pipeline.
const (
	forecastsFile  = "forecasts.json"
	snapshotFile   = "snapshot.json"
	riskModelFile  = "xgb_risk.json"
	modelMetaFile  = "xgb_meta.json"
	hotspotsFile   = "hotspots.geojson"
	survivalFile   = "survival.json"
	candidatesFile = "top_candidates.json"
)

var (
	// ErrUnavailable means an artifact required for the operation was
	// never loaded.
	ErrUnavailable = errors.New("artifact unavailable")
	// ErrNotFound means the artifact is loaded but the requested key
	// does not exist within it.
	ErrNotFound = errors.New("not found")
)

// Artifacts is the process-wide snapshot of everything the batch
// pipeline produced. It is populated once at startup and never
// mutated, so handlers may read it concurrently without locks. A nil
// field means the artifact was missing or unreadable at startup.
type Artifacts struct {
	Forecasts map[string]json.RawMessage
	Snapshot  json.RawMessage
	Model     *models.RiskModel
	ModelMeta *models.ModelMeta
	Hotspots  json.RawMessage
	Survival  *models.Survival

	candidatesPath string
}

// LoadArtifacts reads every artifact under dir, best-effort. A missing
// or corrupt file leaves its field nil and is logged once; the load
// itself never fails. The candidates table is deliberately not read
// here: it is re-read from disk on every request so updates show up
// without a restart.
func LoadArtifacts(dir string) *Artifacts {
	a := &Artifacts{
		candidatesPath: filepath.Join(dir, candidatesFile),
	}

	var forecasts map[string]json.RawMessage
	if loadJSON(dir, forecastsFile, &forecasts) {
		a.Forecasts = forecasts
	}
	loadJSON(dir, snapshotFile, &a.Snapshot)

	var model models.RiskModel
	if loadJSON(dir, riskModelFile, &model) {
		a.Model = &model
	}
	var meta models.ModelMeta
	if loadJSON(dir, modelMetaFile, &meta) {
		a.ModelMeta = &meta
	}
	loadJSON(dir, hotspotsFile, &a.Hotspots)

	var survival models.Survival
	if loadJSON(dir, survivalFile, &survival) {
		a.Survival = &survival
	}

	return a
}

// loadJSON reads and decodes one artifact. Any failure is treated as
// absence so the service stays up with whatever the pipeline has
// produced so far.
func loadJSON(dir, name string, dest any) bool {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("artifact %s not loaded: %v", name, err)
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("artifact %s not loaded: %v", name, err)
		return false
	}
	log.Printf("artifact %s loaded", name)
	return true
}

// RouteIDs lists the route identifiers present in the forecast table,
// sorted. An absent table yields an empty list, not an error.
func (a *Artifacts) RouteIDs() []string {
	ids := make([]string, 0, len(a.Forecasts))
	for id := range a.Forecasts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Forecast returns the stored record for routeID verbatim.
func (a *Artifacts) Forecast(routeID string) (json.RawMessage, error) {
	if a.Forecasts == nil {
		return nil, ErrUnavailable
	}
	record, ok := a.Forecasts[routeID]
	if !ok {
		return nil, ErrNotFound
	}
	return record, nil
}

// CandidatesPath is the on-disk location of the top-candidates table.
func (a *Artifacts) CandidatesPath() string {
	return a.candidatesPath
}

// Present reports which artifacts loaded, for the health payload.
func (a *Artifacts) Present() map[string]bool {
	return map[string]bool{
		"forecasts": a.Forecasts != nil,
		"xgb":       a.Model != nil,
		"xgb_meta":  a.ModelMeta != nil,
		"hotspots":  a.Hotspots != nil,
		"survival":  a.Survival != nil,
	}
}
