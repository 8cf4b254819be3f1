package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"career-intel/internal/domain/demand"
	"career-intel/internal/domain/profile"
	"career-intel/internal/salary"
)

// Artifact file names inside the store directory. Each is an independent
// blob: a failure loading one is reported under that artifact's sentinel,
// never conflated with the others.
const (
	modelFile    = "salary_model.json"
	profilesFile = "role_profiles.json"
	demandFile   = "demand_map.json"
)

var (
	ErrSalaryModel  = errors.New("salary model artifact")
	ErrRoleProfiles = errors.New("role profiles artifact")
	ErrDemandMap    = errors.New("demand map artifact")
)

// Store reads and writes the three training artifacts as JSON blobs in a
// single directory. The trainer writes, the server reads; nothing updates
// an artifact in place.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("empty artifact directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) SaveSalaryModel(m *salary.Model) error {
	return s.save(modelFile, m, ErrSalaryModel)
}

func (s *Store) LoadSalaryModel() (*salary.Model, error) {
	var m salary.Model
	if err := s.load(modelFile, &m, ErrSalaryModel); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) SaveRoleProfiles(roles []profile.RoleProfile) error {
	return s.save(profilesFile, roles, ErrRoleProfiles)
}

func (s *Store) LoadRoleProfiles() ([]profile.RoleProfile, error) {
	var roles []profile.RoleProfile
	if err := s.load(profilesFile, &roles, ErrRoleProfiles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (s *Store) SaveDemandMap(m demand.Map) error {
	return s.save(demandFile, m, ErrDemandMap)
}

func (s *Store) LoadDemandMap() (demand.Map, error) {
	var m demand.Map
	if err := s.load(demandFile, &m, ErrDemandMap); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Store) save(name string, v any, sentinel error) error {
	if s == nil {
		return fmt.Errorf("%w: nil store", sentinel)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", sentinel, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("%w: write: %v", sentinel, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: write: %v", sentinel, err)
	}
	return nil
}

func (s *Store) load(name string, out any, sentinel error) error {
	if s == nil {
		return fmt.Errorf("%w: nil store", sentinel)
	}
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("%w: read: %v", sentinel, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: decode: %v", sentinel, err)
	}
	return nil
}
