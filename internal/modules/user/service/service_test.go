package service

import (
	"context"
	"testing"

	"fitfam.app/familyfit/internal/model"
	"fitfam.app/familyfit/internal/modules/user/dto"
	"fitfam.app/familyfit/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	byUsername map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: make(map[string]*model.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	copied := *user
	f.byUsername[user.Username] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	for _, u := range f.byUsername {
		if u.ID.String() == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if u, ok := f.byUsername[username]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	out := make([]*model.User, 0, len(f.byUsername))
	for _, u := range f.byUsername {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	copied := *user
	f.byUsername[user.Username] = &copied
	return nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.byUsername)), nil
}

func TestRegisterIssuesToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	resp, err := svc.Register(context.Background(), dto.RegisterInput{
		Username: "alice",
		Password: "supersecret",
		Name:     "Alice",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Empty(t, resp.User.PasswordHash)

	// The stored hash must verify against the chosen password
	stored := repo.byUsername["alice"]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("supersecret")))
}

func TestRegisterNormalizesUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	resp, err := svc.Register(context.Background(), dto.RegisterInput{
		Username: "  mary jane ",
		Password: "supersecret",
		Name:     "Mary",
	})
	require.NoError(t, err)
	assert.Equal(t, "mary_jane", resp.User.Username)
}

func TestRegisterDuplicateUsernameIsConflict(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	input := dto.RegisterInput{Username: "alice", Password: "supersecret", Name: "Alice"}

	_, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Register(context.Background(), dto.RegisterInput{
		Username: "alice",
		Password: "supersecret",
		Name:     "Alice",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), dto.LoginInput{Username: "alice", Password: "supersecret"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginInput{Username: "alice", Password: "nope"})
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginInput{Username: "ghost", Password: "supersecret"})
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})
}

func TestResetPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Register(context.Background(), dto.RegisterInput{
		Username: "alice",
		Password: "supersecret",
		Name:     "Alice",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(context.Background(), "alice", "newpassword"))

	_, err = svc.Login(context.Background(), dto.LoginInput{Username: "alice", Password: "supersecret"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = svc.Login(context.Background(), dto.LoginInput{Username: "alice", Password: "newpassword"})
	assert.NoError(t, err)

	err = svc.ResetPassword(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetAllUsersStripsPasswordHashes(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)

	for _, name := range []string{"alice", "bob"} {
		_, err := svc.Register(context.Background(), dto.RegisterInput{
			Username: name,
			Password: "supersecret",
			Name:     name,
		})
		require.NoError(t, err)
	}

	users, err := svc.GetAllUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
}
