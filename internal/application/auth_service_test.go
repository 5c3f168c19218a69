package application

import (
	"context"
	"io"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/auth-profile-service/internal/domain/entity"
	repo "github.com/oksasatya/auth-profile-service/internal/domain/repository"
	"github.com/oksasatya/auth-profile-service/pkg/helpers"
)

// memoryRepo is an in-memory UserRepository with the same contract as the
// postgres implementation: nil,nil on miss, ErrDuplicateEmail on conflict.
type memoryRepo struct {
	mu    sync.Mutex
	seq   int
	users []*entity.User
}

func newMemoryRepo() *memoryRepo { return &memoryRepo{} }

func (m *memoryRepo) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.users {
		if e.Email == u.Email {
			return repo.ErrDuplicateEmail
		}
	}
	m.seq++
	u.ID = "user-" + strconv.Itoa(m.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.users = append(m.users, &cp)
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.users {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memoryRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.users {
		if e.Email == email {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memoryRepo) Update(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.users {
		if e.ID == u.ID {
			u.UpdatedAt = time.Now()
			cp := *u
			m.users[i] = &cp
			return nil
		}
	}
	return ErrUserNotFound
}

func (m *memoryRepo) List(_ context.Context, onlyPublic bool) ([]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.User
	for _, e := range m.users {
		if onlyPublic && !e.IsPublic {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

var _ repo.UserRepository = (*memoryRepo)(nil)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestService(r repo.UserRepository) *Service {
	return NewService(r, helpers.NewJWTManager("test-secret", time.Hour), testLogger())
}

func TestRegisterAppliesDefaults(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	u, err := svc.Register(context.Background(), "a@x.com", "password1", "A")
	require.NoError(t, err)

	assert.Equal(t, entity.RoleUser, u.Role)
	assert.True(t, u.IsPublic)
	assert.Equal(t, entity.ProfileFieldDefault, u.Bio)
	assert.Equal(t, entity.ProfileFieldDefault, u.Phone)
	assert.Equal(t, entity.ProfileFieldDefault, u.ProfilePictureURL)
	assert.NotEqual(t, "password1", u.PasswordHash)
	assert.False(t, u.OAuthAccount)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "password1", "A")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "a@x.com", "password2", "B")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newTestService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "password1", "A")
	require.NoError(t, err)

	_, _, _, wrongPw := svc.Login(ctx, "a@x.com", "wrong-password")
	_, _, _, unknown := svc.Login(ctx, "nobody@x.com", "password1")

	assert.ErrorIs(t, wrongPw, ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
	assert.Equal(t, wrongPw.Error(), unknown.Error())
}

func TestLoginIssuesTokenBoundToUser(t *testing.T) {
	r := newMemoryRepo()
	svc := newTestService(r)
	ctx := context.Background()

	reg, err := svc.Register(ctx, "a@x.com", "password1", "A")
	require.NoError(t, err)

	u, token, exp, err := svc.Login(ctx, "a@x.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, u.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := svc.JWT.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
}

func TestLoginWithProviderProvisionsPasswordlessAccount(t *testing.T) {
	r := newMemoryRepo()
	svc := newTestService(r)
	ctx := context.Background()

	u, token, _, err := svc.LoginWithProvider(ctx, &ExternalIdentity{Email: "g@x.com", Name: "G"})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, u.OAuthAccount)
	assert.Empty(t, u.PasswordHash)

	// The provisioned account has no usable password; in particular the
	// email itself must not work as one.
	_, _, _, err = svc.Login(ctx, "g@x.com", "g@x.com")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWithProviderFindsExistingUser(t *testing.T) {
	r := newMemoryRepo()
	svc := newTestService(r)
	ctx := context.Background()

	reg, err := svc.Register(ctx, "a@x.com", "password1", "A")
	require.NoError(t, err)

	u, _, _, err := svc.LoginWithProvider(ctx, &ExternalIdentity{Email: "a@x.com", Name: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, reg.ID, u.ID)
	assert.False(t, u.OAuthAccount)
}

func TestUpdateProfilePartial(t *testing.T) {
	r := newMemoryRepo()
	svc := newTestService(r)
	ctx := context.Background()

	reg, err := svc.Register(ctx, "a@x.com", "password1", "A")
	require.NoError(t, err)

	bio := "hello"
	pub := false
	u, err := svc.UpdateProfile(ctx, reg.ID, UpdateProfileInput{Bio: &bio, IsPublic: &pub})
	require.NoError(t, err)

	assert.Equal(t, "hello", u.Bio)
	assert.False(t, u.IsPublic)
	// untouched fields retain prior values
	assert.Equal(t, "A", u.Name)
	assert.Equal(t, entity.ProfileFieldDefault, u.Phone)
	assert.Equal(t, entity.RoleUser, u.Role)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc := newTestService(newMemoryRepo())
	name := "X"
	_, err := svc.UpdateProfile(context.Background(), "missing", UpdateProfileInput{Name: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListProfilesRoleFiltering(t *testing.T) {
	r := newMemoryRepo()
	svc := newTestService(r)
	ctx := context.Background()

	a, err := svc.Register(ctx, "a@x.com", "password1", "A")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "b@x.com", "password1", "B")
	require.NoError(t, err)

	pub := false
	_, err = svc.UpdateProfile(ctx, a.ID, UpdateProfileInput{IsPublic: &pub})
	require.NoError(t, err)

	asUser, err := svc.ListProfiles(ctx, entity.RoleUser)
	require.NoError(t, err)
	require.Len(t, asUser, 1)
	assert.Equal(t, "b@x.com", asUser[0].Email)

	asAdmin, err := svc.ListProfiles(ctx, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, asAdmin, 2)
}
