package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	RunMetadata
	Trajectory Trajectory `json:"trajectory"`
}

// ExportJSON writes the run and its trajectory as indented JSON.
func ExportJSON(w io.Writer, meta RunMetadata, traj Trajectory) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: meta, Trajectory: traj})
}

func ExportJSONFile(path string, meta RunMetadata, traj Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ExportJSON(f, meta, traj)
}

// Export loads a stored run and writes it as JSON.
func (s *Store) Export(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	traj, err := s.LoadTrajectory(meta.ID)
	if err != nil {
		return err
	}
	return ExportJSON(w, *meta, traj)
}
