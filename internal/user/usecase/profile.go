package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"easynote/internal/model"
	"easynote/internal/user"
	"easynote/internal/user/repository"
)

// Me returns the authenticated user's account.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	u, err := uc.repo.GetUserByID(ctx, sc.UserID)
	if err != nil {
		return model.User{}, err
	}
	if u.ID == "" {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}

// UpdateMe applies partial profile changes.
func (uc *implUseCase) UpdateMe(ctx context.Context, sc model.Scope, input user.UpdateMeInput) (model.User, error) {
	if _, err := uc.Me(ctx, sc); err != nil {
		return model.User{}, err
	}

	return uc.repo.UpdateUser(ctx, repository.UpdateUserOptions{
		ID:        sc.UserID,
		Nickname:  input.Nickname,
		AvatarURL: input.AvatarURL,
	})
}

// ChangePassword verifies the old password before storing a new hash.
func (uc *implUseCase) ChangePassword(ctx context.Context, sc model.Scope, input user.ChangePasswordInput) error {
	u, err := uc.Me(ctx, sc)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.OldPassword)) != nil {
		return user.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "bcrypt.GenerateFromPassword: %v", err)
		return err
	}
	return uc.repo.UpdatePassword(ctx, u.ID, string(hash))
}
