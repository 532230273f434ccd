package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	metadataFile   = "metadata.json"
	trajectoryFile = "trajectory.csv"
)

var (
	ErrRunNotFound  = errors.New("storage: run not found")
	ErrAmbiguousRun = errors.New("storage: run id prefix is ambiguous")
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string    `json:"id"`
	Model       string    `json:"model"`
	Stepper     string    `json:"stepper"`
	Timestamp   time.Time `json:"timestamp"`
	Matsubara   int       `json:"matsubara"`
	Start       float64   `json:"start"`
	End         float64   `json:"end"`
	Dt          float64   `json:"dt"`
	AbsTol      float64   `json:"abs_tol"`
	RelTol      float64   `json:"rel_tol"`
	Adaptive    bool      `json:"adaptive"`
	Steps       int       `json:"steps"`
	Rejected    int       `json:"rejected"`
	Evaluations int       `json:"evaluations"`
	Metrics     Metrics   `json:"metrics"`
}

// Row is one accepted state of a flow.
type Row struct {
	Time    float64 `json:"time"`
	Dt      float64 `json:"dt"`
	Norm    float64 `json:"norm"`
	SigNorm float64 `json:"sig_norm"`
	GamNorm float64 `json:"gam_norm"`
	Gam0Re  float64 `json:"gam0_re"`
	Gam0Im  float64 `json:"gam0_im"`
}

var header = []string{"time", "dt", "norm", "sig_norm", "gam_norm", "gam0_re", "gam0_im"}

func (r Row) fields() []float64 {
	return []float64{r.Time, r.Dt, r.Norm, r.SigNorm, r.GamNorm, r.Gam0Re, r.Gam0Im}
}

type Trajectory []Row

func (tr Trajectory) Times() []float64 { return tr.column(func(r Row) float64 { return r.Time }) }
func (tr Trajectory) Norms() []float64 { return tr.column(func(r Row) float64 { return r.Norm }) }

// Column returns the named CSV column.
func (tr Trajectory) Column(name string) ([]float64, error) {
	for i, h := range header {
		if h == name {
			return tr.column(func(r Row) float64 { return r.fields()[i] }), nil
		}
	}
	return nil, fmt.Errorf("storage: unknown column %q (have %s)", name, strings.Join(header, ", "))
}

func (tr Trajectory) column(fn func(Row) float64) []float64 {
	out := make([]float64, len(tr))
	for i, r := range tr {
		out[i] = fn(r)
	}
	return out
}

// Save writes a new run directory and returns its id. A fresh id and
// timestamp are assigned when meta leaves them empty. The directory is removed
// again when any file fails to write.
func (s *Store) Save(meta RunMetadata, traj Trajectory) (string, error) {
	if meta.ID == "" {
		meta.ID = uuid.NewString()
	}
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	if err := writeTrajectory(filepath.Join(runDir, trajectoryFile), traj); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	return meta.ID, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

func writeTrajectory(path string, traj Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	row := make([]string, len(header))
	for _, r := range traj {
		for i, v := range r.fields() {
			row[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns all readable runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.readMetadata(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

// Resolve expands a unique id prefix to the full run id.
func (s *Store) Resolve(prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("%w: empty id", ErrRunNotFound)
	}
	if _, err := os.Stat(filepath.Join(s.baseDir, prefix, metadataFile)); err == nil {
		return prefix, nil
	}

	entries, err := os.ReadDir(s.baseDir)
	if err != nil && !os.IsNotExist(err) {
		return "", err
	}
	var match string
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("%w: %s", ErrAmbiguousRun, prefix)
		}
		match = entry.Name()
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", ErrRunNotFound, prefix)
	}
	return match, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	id, err := s.Resolve(runID)
	if err != nil {
		return nil, err
	}
	return s.readMetadata(id)
}

func (s *Store) readMetadata(id string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: %s: %w", id, err)
	}
	return &meta, nil
}

func (s *Store) LoadTrajectory(runID string) (Trajectory, error) {
	id, err := s.Resolve(runID)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(filepath.Join(s.baseDir, id, trajectoryFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(header)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("storage: %s: %w", id, err)
	}
	if len(records) < 2 {
		return Trajectory{}, nil
	}

	traj := make(Trajectory, 0, len(records)-1)
	for line, record := range records[1:] {
		var v [7]float64
		for j, field := range record {
			if v[j], err = strconv.ParseFloat(field, 64); err != nil {
				return nil, fmt.Errorf("storage: %s line %d: %w", id, line+2, err)
			}
		}
		traj = append(traj, Row{Time: v[0], Dt: v[1], Norm: v[2], SigNorm: v[3], GamNorm: v[4], Gam0Re: v[5], Gam0Im: v[6]})
	}
	return traj, nil
}
