package usecase

import (
	"context"
	"errors"
	"testing"

	domainAuth "github.com/AzielCF/az-photofeed/domains/auth"
	domainUser "github.com/AzielCF/az-photofeed/domains/user"
	pkgError "github.com/AzielCF/az-photofeed/pkg/error"
	"github.com/AzielCF/az-photofeed/pkg/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users       map[string]*domainUser.User
	roles       map[string][]string
	assignErr   error
	assignCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: map[string]*domainUser.User{},
		roles: map[string][]string{},
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domainUser.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domainUser.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, pkgError.NotFoundError("user not found")
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domainUser.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, pkgError.NotFoundError("user not found")
	}
	return u, nil
}

func (r *fakeUserRepo) GetByIDWithPermissions(ctx context.Context, id string) (*domainUser.User, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeUserRepo) List(_ context.Context) ([]*domainUser.User, error) {
	out := make([]*domainUser.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domainUser.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return pkgError.NotFoundError("user not found")
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) SoftDelete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return pkgError.NotFoundError("user not found")
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) AssignRole(_ context.Context, userID, roleName string) error {
	r.assignCalls++
	if r.assignErr != nil {
		return r.assignErr
	}
	r.roles[userID] = append(r.roles[userID], roleName)
	return nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string) *domainUser.User {
	t.Helper()
	hash, err := security.HashPassword(password)
	require.NoError(t, err)
	user := domainUser.NewUser(email, hash, "Ada", "Lovelace", nil)
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestRegister_CreatesUserWithSubscriberRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	user, err := svc.Register(context.Background(), domainAuth.RegisterRequest{
		Email:    "ada@example.com",
		Password: "correct-horse",
		Name:     "Ada",
		Lastname: "Lovelace",
	})

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "correct-horse", user.PasswordHash, "password must be stored hashed")
	assert.Equal(t, []string{domainUser.RoleSubscriber}, repo.roles[user.ID])
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ada@example.com", "correct-horse")
	svc := NewAuthService(repo)

	_, err := svc.Register(context.Background(), domainAuth.RegisterRequest{
		Email:    "ada@example.com",
		Password: "another-pass",
		Name:     "Ada",
		Lastname: "Lovelace",
	})

	var validationErr pkgError.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestRegister_InvalidPayloadRejected(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Register(context.Background(), domainAuth.RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
		Name:     "",
		Lastname: "",
	})

	var validationErr pkgError.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, repo.users)
}

func TestLogin_ReturnsTokenForValidCredentials(t *testing.T) {
	security.SetSecretKey("test-secret")
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "ada@example.com", "correct-horse")
	svc := NewAuthService(repo)

	resp, err := svc.Login(context.Background(), domainAuth.LoginRequest{
		Email:    "ada@example.com",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, user.ID, resp.User.ID)

	claims, err := security.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestLogin_WrongPasswordIsUnauthorized(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "ada@example.com", "correct-horse")
	svc := NewAuthService(repo)

	_, err := svc.Login(context.Background(), domainAuth.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})

	var unauthorized pkgError.UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)
}

func TestLogin_UnknownEmailIsUnauthorizedNotNotFound(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Login(context.Background(), domainAuth.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	var unauthorized pkgError.UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)
	var notFound pkgError.NotFoundError
	assert.False(t, errors.As(err, &notFound), "login must not reveal whether the account exists")
}

func TestCan_FlatPermissionLookup(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "ada@example.com", "correct-horse")
	user.Roles = []domainUser.Role{{
		Name:        domainUser.RoleAdministrator,
		Permissions: []domainUser.Permission{{Name: "users.manage"}},
	}}
	svc := NewAuthService(repo)

	granted, err := svc.Can(context.Background(), user.ID, "users.manage")
	require.NoError(t, err)
	assert.True(t, granted.HasPermission)
	assert.Equal(t, "users.manage", granted.PermissionName)

	denied, err := svc.Can(context.Background(), user.ID, "users.Manage")
	require.NoError(t, err)
	assert.False(t, denied.HasPermission, "lookup is exact name equality")
}

func TestChangePassword_RequiresOldPassword(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "ada@example.com", "correct-horse")
	svc := NewAuthService(repo)

	err := svc.ChangePassword(context.Background(), user.ID, domainAuth.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "brand-new-pass",
	})
	var unauthorized pkgError.UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)

	err = svc.ChangePassword(context.Background(), user.ID, domainAuth.ChangePasswordRequest{
		OldPassword: "correct-horse",
		NewPassword: "brand-new-pass",
	})
	require.NoError(t, err)
	assert.True(t, security.CheckPasswordHash("brand-new-pass", user.PasswordHash))
}
