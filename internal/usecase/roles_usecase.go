package usecase

import (
	"context"

	"career-intel/internal/artifact"
	"career-intel/internal/domain/profile"
)

type RolesUsecase interface {
	ListRoles(ctx context.Context) ([]profile.RoleProfile, error)
}

// Roles exposes the trained role profiles to the presentation layer. The
// snapshot is immutable, so this is a plain read.
type Roles struct {
	snapshot *artifact.Snapshot
}

func NewRolesUsecase(snapshot *artifact.Snapshot) *Roles {
	return &Roles{snapshot: snapshot}
}

func (u *Roles) ListRoles(context.Context) ([]profile.RoleProfile, error) {
	if u == nil || u.snapshot == nil {
		return nil, ErrInternal
	}
	return u.snapshot.Roles, nil
}
