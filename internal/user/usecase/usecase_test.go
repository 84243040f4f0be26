package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"easynote/internal/model"
	"easynote/internal/user"
	"easynote/internal/user/repository"
	"easynote/pkg/scope"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository with injectable behavior
type mockRepo struct {
	createFunc         func(opt repository.CreateUserOptions) (model.User, error)
	getByEmailFunc     func(email string) (model.User, error)
	getByIDFunc        func(id string) (model.User, error)
	updateFunc         func(opt repository.UpdateUserOptions) (model.User, error)
	updatePasswordFunc func(id, hash string) error
}

func (m *mockRepo) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.User{ID: "new-id", Email: opt.Email, PasswordHash: opt.PasswordHash, Nickname: opt.Nickname}, nil
}

func (m *mockRepo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(email)
	}
	return model.User{}, nil
}

func (m *mockRepo) GetUserByID(ctx context.Context, id string) (model.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(id)
	}
	return model.User{}, nil
}

func (m *mockRepo) UpdateUser(ctx context.Context, opt repository.UpdateUserOptions) (model.User, error) {
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return model.User{ID: opt.ID}, nil
}

func (m *mockRepo) UpdatePassword(ctx context.Context, id, hash string) error {
	if m.updatePasswordFunc != nil {
		return m.updatePasswordFunc(id, hash)
	}
	return nil
}

func testManager() scope.Manager {
	return scope.New("test-secret", time.Hour)
}

func TestRegister(t *testing.T) {
	t.Run("creates account and issues token", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRepo{}, testManager())

		out, err := uc.Register(context.Background(), user.RegisterInput{
			Email: "a@b.c", Password: "secret123", Nickname: "阿明",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Token == "" {
			t.Errorf("expected a token")
		}
		if out.User.Email != "a@b.c" || out.User.Nickname != "阿明" {
			t.Errorf("unexpected user: %+v", out.User)
		}
		if out.User.PasswordHash == "secret123" {
			t.Errorf("password must be hashed")
		}
	})

	t.Run("taken email", func(t *testing.T) {
		repo := &mockRepo{
			getByEmailFunc: func(email string) (model.User, error) {
				return model.User{ID: "existing"}, nil
			},
		}
		uc := New(&mockLogger{}, repo, testManager())

		_, err := uc.Register(context.Background(), user.RegisterInput{Email: "a@b.c", Password: "x"})
		if !errors.Is(err, user.ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	stored := model.User{ID: "u1", Email: "a@b.c", PasswordHash: string(hash)}

	t.Run("valid credentials", func(t *testing.T) {
		repo := &mockRepo{
			getByEmailFunc: func(email string) (model.User, error) { return stored, nil },
		}
		uc := New(&mockLogger{}, repo, testManager())

		out, err := uc.Login(context.Background(), user.LoginInput{Email: "a@b.c", Password: "secret123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Token == "" || out.User.ID != "u1" {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := &mockRepo{
			getByEmailFunc: func(email string) (model.User, error) { return stored, nil },
		}
		uc := New(&mockLogger{}, repo, testManager())

		_, err := uc.Login(context.Background(), user.LoginInput{Email: "a@b.c", Password: "nope"})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email looks like wrong password", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockRepo{}, testManager())

		_, err := uc.Login(context.Background(), user.LoginInput{Email: "ghost@b.c", Password: "x"})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestChangePassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("old-pass"), bcrypt.DefaultCost)
	stored := model.User{ID: "u1", PasswordHash: string(hash)}

	t.Run("verifies old password", func(t *testing.T) {
		var newHash string
		repo := &mockRepo{
			getByIDFunc: func(id string) (model.User, error) { return stored, nil },
			updatePasswordFunc: func(id, h string) error {
				newHash = h
				return nil
			},
		}
		uc := New(&mockLogger{}, repo, testManager())

		err := uc.ChangePassword(context.Background(), model.Scope{UserID: "u1"}, user.ChangePasswordInput{
			OldPassword: "old-pass", NewPassword: "new-pass",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bcrypt.CompareHashAndPassword([]byte(newHash), []byte("new-pass")) != nil {
			t.Errorf("stored hash does not match the new password")
		}
	})

	t.Run("rejects wrong old password", func(t *testing.T) {
		repo := &mockRepo{
			getByIDFunc: func(id string) (model.User, error) { return stored, nil },
		}
		uc := New(&mockLogger{}, repo, testManager())

		err := uc.ChangePassword(context.Background(), model.Scope{UserID: "u1"}, user.ChangePasswordInput{
			OldPassword: "nope", NewPassword: "new-pass",
		})
		if !errors.Is(err, user.ErrWrongPassword) {
			t.Errorf("expected ErrWrongPassword, got %v", err)
		}
	})
}

func TestMe_NotFound(t *testing.T) {
	uc := New(&mockLogger{}, &mockRepo{}, testManager())

	_, err := uc.Me(context.Background(), model.Scope{UserID: "ghost"})
	if !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
