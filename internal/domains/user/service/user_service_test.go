package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eats-backend/internal/domains/user/model"
	"eats-backend/internal/shared"
	"eats-backend/pkg/jwt"
)

// =====================================================
// FAKES
// =====================================================

type fakeUserRepo struct {
	users         map[uuid.UUID]*model.User
	verifications map[uuid.UUID]*model.Verification
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:         make(map[uuid.UUID]*model.User),
		verifications: make(map[uuid.UUID]*model.Verification),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return model.ErrUserNotFound
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) CreateVerification(_ context.Context, v *model.Verification) error {
	cp := *v
	f.verifications[v.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetVerificationByCode(_ context.Context, code string) (*model.Verification, error) {
	for _, v := range f.verifications {
		if v.Code == code {
			cp := *v
			return &cp, nil
		}
	}
	return nil, model.ErrVerificationNotFound
}

func (f *fakeUserRepo) DeleteVerification(_ context.Context, id uuid.UUID) error {
	delete(f.verifications, id)
	return nil
}

func (f *fakeUserRepo) DeleteVerificationsByUser(_ context.Context, userID uuid.UUID) error {
	for id, v := range f.verifications {
		if v.UserID == userID {
			delete(f.verifications, id)
		}
	}
	return nil
}

func (f *fakeUserRepo) verificationFor(userID uuid.UUID) *model.Verification {
	for _, v := range f.verifications {
		if v.UserID == userID {
			return v
		}
	}
	return nil
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
}

func (f *fakeEnqueuer) Enqueue(task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func newUserFixture() (*fakeUserRepo, *fakeEnqueuer, UserService) {
	repo := newFakeUserRepo()
	enqueuer := &fakeEnqueuer{}
	svc := NewUserService(repo, jwt.NewManager("test-secret", 24), enqueuer)
	return repo, enqueuer, svc
}

// =====================================================
// TESTS
// =====================================================

func TestRegisterCreatesUserAndQueuesVerification(t *testing.T) {
	repo, enqueuer, svc := newUserFixture()

	dto, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "client@example.com",
		Password: "secret-pass",
		Role:     model.RoleClient,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleClient, dto.Role)
	assert.False(t, dto.IsVerified)

	stored := repo.users[dto.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret-pass", stored.PasswordHash, "password must be hashed")

	require.Len(t, enqueuer.tasks, 1)
	assert.Equal(t, shared.TypeSendVerificationEmail, enqueuer.tasks[0].Type())
	assert.NotNil(t, repo.verificationFor(dto.ID))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, _, svc := newUserFixture()

	req := model.RegisterRequest{Email: "client@example.com", Password: "secret-pass", Role: model.RoleClient}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)

	var userErr *model.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, model.ErrCodeEmailExists, userErr.Code)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	_, _, svc := newUserFixture()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "admin@example.com",
		Password: "secret-pass",
		Role:     model.Role("admin"),
	})
	require.Error(t, err)
}

func TestLoginRoundTrip(t *testing.T) {
	_, _, svc := newUserFixture()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "client@example.com",
		Password: "secret-pass",
		Role:     model.RoleClient,
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "client@example.com",
		Password: "secret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "client@example.com", resp.User.Email)
}

func TestLoginWrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	_, _, svc := newUserFixture()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "client@example.com",
		Password: "secret-pass",
		Role:     model.RoleClient,
	})
	require.NoError(t, err)

	_, wrongPass := svc.Login(context.Background(), model.LoginRequest{
		Email:    "client@example.com",
		Password: "wrong-pass",
	})
	_, unknownEmail := svc.Login(context.Background(), model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret-pass",
	})

	var e1, e2 *model.UserError
	require.ErrorAs(t, wrongPass, &e1)
	require.ErrorAs(t, unknownEmail, &e2)
	assert.Equal(t, e1.Code, e2.Code)
	assert.Equal(t, e1.Message, e2.Message)
}

func TestVerifyEmail(t *testing.T) {
	repo, _, svc := newUserFixture()

	dto, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "client@example.com",
		Password: "secret-pass",
		Role:     model.RoleClient,
	})
	require.NoError(t, err)

	verification := repo.verificationFor(dto.ID)
	require.NotNil(t, verification)

	require.NoError(t, svc.VerifyEmail(context.Background(), verification.Code))
	assert.True(t, repo.users[dto.ID].IsVerified)
	assert.Nil(t, repo.verificationFor(dto.ID), "redeemed code must be deleted")
}

func TestVerifyEmailUnknownCode(t *testing.T) {
	_, _, svc := newUserFixture()

	err := svc.VerifyEmail(context.Background(), "nope")
	var userErr *model.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, model.ErrCodeVerificationNotFound, userErr.Code)
}

func TestEditProfileEmailResetsVerification(t *testing.T) {
	repo, enqueuer, svc := newUserFixture()

	dto, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "client@example.com",
		Password: "secret-pass",
		Role:     model.RoleClient,
	})
	require.NoError(t, err)

	verification := repo.verificationFor(dto.ID)
	require.NoError(t, svc.VerifyEmail(context.Background(), verification.Code))

	newEmail := "new@example.com"
	updated, err := svc.EditProfile(context.Background(), dto.ID, model.EditProfileRequest{Email: &newEmail})
	require.NoError(t, err)

	assert.Equal(t, newEmail, updated.Email)
	assert.False(t, updated.IsVerified)
	assert.Len(t, enqueuer.tasks, 2, "a fresh verification mail is queued")
}

func TestEditProfilePasswordOnlyKeepsVerification(t *testing.T) {
	repo, _, svc := newUserFixture()

	dto, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "client@example.com",
		Password: "secret-pass",
		Role:     model.RoleClient,
	})
	require.NoError(t, err)

	verification := repo.verificationFor(dto.ID)
	require.NoError(t, svc.VerifyEmail(context.Background(), verification.Code))

	newPass := "another-pass"
	updated, err := svc.EditProfile(context.Background(), dto.ID, model.EditProfileRequest{Password: &newPass})
	require.NoError(t, err)
	assert.True(t, updated.IsVerified)

	_, err = svc.Login(context.Background(), model.LoginRequest{Email: "client@example.com", Password: newPass})
	require.NoError(t, err)
}
