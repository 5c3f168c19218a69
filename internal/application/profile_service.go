package application

import (
	"context"

	"github.com/oksasatya/auth-profile-service/internal/domain/entity"
)

// UpdateProfileInput is a partial update: nil fields keep their prior value.
// Role and email are not represented here and can never change via this path.
type UpdateProfileInput struct {
	Name              *string
	Bio               *string
	Phone             *string
	ProfilePictureURL *string
	IsPublic          *bool
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Bio != nil {
		u.Bio = *in.Bio
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.ProfilePictureURL != nil {
		u.ProfilePictureURL = *in.ProfilePictureURL
	}
	if in.IsPublic != nil {
		u.IsPublic = *in.IsPublic
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ListProfiles returns every user for admins and only public users otherwise.
func (s *Service) ListProfiles(ctx context.Context, actingRole entity.Role) ([]*entity.User, error) {
	return s.Repo.List(ctx, !actingRole.IsAdmin())
}
