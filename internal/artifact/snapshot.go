package artifact

import (
	"errors"
	"fmt"

	"career-intel/internal/domain/demand"
	"career-intel/internal/domain/profile"
	"career-intel/internal/salary"
)

// ErrDimensionMismatch means the loaded artifacts were trained against a
// different embedding dimensionality than the running backend. Refusing to
// serve is better than predicting garbage; the artifacts need a retrain.
var ErrDimensionMismatch = errors.New("artifact dimensionality mismatch")

// Snapshot is the process-wide read-only view of one training run: loaded
// once at server startup and never mutated. Training runs in a separate
// process and replaces the files wholesale.
type Snapshot struct {
	Model     *salary.Model
	Roles     []profile.RoleProfile
	DemandMap demand.Map
}

// LoadSnapshot loads all three artifacts and verifies every vector agrees
// with the embedding dimensionality the server will produce at request
// time. Any missing or corrupt artifact fails the load under its own
// sentinel; no partial snapshot is ever returned.
func LoadSnapshot(s *Store, embedDim int) (*Snapshot, error) {
	model, err := s.LoadSalaryModel()
	if err != nil {
		return nil, err
	}
	roles, err := s.LoadRoleProfiles()
	if err != nil {
		return nil, err
	}
	dm, err := s.LoadDemandMap()
	if err != nil {
		return nil, err
	}

	if model.NumFeatures != embedDim+1 {
		return nil, fmt.Errorf("%w: model expects %d features, embedding dimension %d gives %d",
			ErrDimensionMismatch, model.NumFeatures, embedDim, embedDim+1)
	}
	for _, r := range roles {
		if len(r.Vector) != embedDim {
			return nil, fmt.Errorf("%w: role %q has %d-dim vector, embedding dimension is %d",
				ErrDimensionMismatch, r.Role, len(r.Vector), embedDim)
		}
	}

	return &Snapshot{Model: model, Roles: roles, DemandMap: dm}, nil
}

// RoleByName finds a role profile by its taxonomy name.
func (s *Snapshot) RoleByName(name string) (profile.RoleProfile, bool) {
	if s == nil {
		return profile.RoleProfile{}, false
	}
	for _, r := range s.Roles {
		if r.Role == name {
			return r, true
		}
	}
	return profile.RoleProfile{}, false
}
