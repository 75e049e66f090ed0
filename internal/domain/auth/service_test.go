package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/security"
)

// Mock objects

type passthroughTxManager struct{}

func (m *passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockRepo struct {
	usersByEmail map[string]*User
	orgs         map[id.ID]*Organization
	memberships  []Member
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		usersByEmail: make(map[string]*User),
		orgs:         make(map[id.ID]*Organization),
	}
}

func (r *mockRepo) CreateUser(ctx context.Context, user *User) error {
	r.usersByEmail[user.Email] = user
	return nil
}

func (r *mockRepo) GetUserByID(ctx context.Context, userID id.ID) (*User, error) {
	for _, u := range r.usersByEmail {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user", userID.String())
}

func (r *mockRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	if u, ok := r.usersByEmail[email]; ok {
		return u, nil
	}
	return nil, apperror.NewNotFound("user", email)
}

func (r *mockRepo) UpdateUser(ctx context.Context, user *User) error {
	r.usersByEmail[user.Email] = user
	return nil
}

func (r *mockRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := r.usersByEmail[email]
	return ok, nil
}

func (r *mockRepo) CreateOrganization(ctx context.Context, org *Organization) error {
	r.orgs[org.ID] = org
	return nil
}

func (r *mockRepo) GetOrganization(ctx context.Context, orgID id.ID) (*Organization, error) {
	if o, ok := r.orgs[orgID]; ok {
		return o, nil
	}
	return nil, apperror.NewNotFound("organization", orgID.String())
}

func (r *mockRepo) CreateMember(ctx context.Context, member *Member) error {
	r.memberships = append(r.memberships, *member)
	return nil
}

func (r *mockRepo) GetMembership(ctx context.Context, userID, orgID id.ID) (*Member, error) {
	for _, m := range r.memberships {
		if m.UserID == userID && m.OrgID == orgID {
			return &m, nil
		}
	}
	return nil, apperror.NewNotFound("membership", userID.String())
}

func (r *mockRepo) ListUserMemberships(ctx context.Context, userID id.ID) ([]Member, error) {
	var out []Member
	for _, m := range r.memberships {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func newTestService(repo *mockRepo) *Service {
	return NewService(repo, &passthroughTxManager{},
		NewJWTService(DefaultJWTConfig("test-secret")), DefaultServiceConfig())
}

func validRegister() RegisterRequest {
	return RegisterRequest{
		Email:     "Ana@Bakery.com",
		Password:  "long-enough",
		FirstName: "Ana",
		LastName:  "Lopez",
		OrgName:   "Lechem",
	}
}

func TestRegisterOwner(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	resp, err := svc.RegisterOwner(t.Context(), validRegister())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, security.RoleOwner, resp.Role)

	// Email stored lowercased
	user, ok := repo.usersByEmail["ana@bakery.com"]
	require.True(t, ok)
	assert.Equal(t, "Ana", user.FirstName)
	assert.NotEqual(t, "long-enough", user.PasswordHash, "password must be hashed")

	require.Len(t, repo.memberships, 1)
	assert.Equal(t, security.RoleOwner, repo.memberships[0].Role)
	assert.Equal(t, resp.OrgID, repo.memberships[0].OrgID)
}

func TestRegisterOwner_Validation(t *testing.T) {
	svc := newTestService(newMockRepo())

	tests := []struct {
		name   string
		mutate func(*RegisterRequest)
	}{
		{"bad email", func(r *RegisterRequest) { r.Email = "nope" }},
		{"short password", func(r *RegisterRequest) { r.Password = "short" }},
		{"missing org name", func(r *RegisterRequest) { r.OrgName = "  " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.mutate(&req)
			_, err := svc.RegisterOwner(t.Context(), req)
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
		})
	}
}

func TestRegisterOwner_DuplicateEmail(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	_, err := svc.RegisterOwner(t.Context(), validRegister())
	require.NoError(t, err)

	_, err = svc.RegisterOwner(t.Context(), validRegister())
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
}

func TestLogin(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	registered, err := svc.RegisterOwner(t.Context(), validRegister())
	require.NoError(t, err)

	resp, err := svc.Login(t.Context(), LoginRequest{Email: "ANA@bakery.com", Password: "long-enough"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, registered.OrgID, resp.OrgID)
	assert.Equal(t, security.RoleOwner, resp.Role)
	assert.NotNil(t, resp.User.LastLoginAt)
}

func TestLogin_BadCredentialsAreUniform(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo)

	_, err := svc.RegisterOwner(t.Context(), validRegister())
	require.NoError(t, err)

	// Deactivate a second account to cover the inactive path.
	hash, err := bcrypt.GenerateFromPassword([]byte("long-enough"), bcrypt.MinCost)
	require.NoError(t, err)
	inactive := NewUser("inactive@bakery.com", string(hash))
	inactive.IsActive = false
	require.NoError(t, repo.CreateUser(t.Context(), inactive))

	attempts := []LoginRequest{
		{Email: "unknown@bakery.com", Password: "long-enough"},
		{Email: "ana@bakery.com", Password: "wrong-password"},
		{Email: "inactive@bakery.com", Password: "long-enough"},
	}

	for _, req := range attempts {
		_, err := svc.Login(t.Context(), req)
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
		assert.Equal(t, "invalid credentials", appErr.Message,
			"unknown email, wrong password and inactive account must be indistinguishable")
	}
}
