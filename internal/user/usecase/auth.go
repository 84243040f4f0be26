package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"easynote/internal/user"
	"easynote/internal/user/repository"
)

// Register creates an account and signs the user in.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.AuthOutput, error) {
	existing, err := uc.repo.GetUserByEmail(ctx, input.Email)
	if err != nil {
		return user.AuthOutput{}, err
	}
	if existing.ID != "" {
		return user.AuthOutput{}, user.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "bcrypt.GenerateFromPassword: %v", err)
		return user.AuthOutput{}, err
	}

	created, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Email:        input.Email,
		PasswordHash: string(hash),
		Nickname:     input.Nickname,
	})
	if err != nil {
		return user.AuthOutput{}, err
	}

	token, err := uc.jwtManager.Issue(created.ID)
	if err != nil {
		uc.l.Errorf(ctx, "jwtManager.Issue: %v", err)
		return user.AuthOutput{}, err
	}
	return user.AuthOutput{Token: token, User: created}, nil
}

// Login verifies credentials and issues a token. Unknown email and
// wrong password are indistinguishable to the caller.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	u, err := uc.repo.GetUserByEmail(ctx, input.Email)
	if err != nil {
		return user.AuthOutput{}, err
	}
	if u.ID == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)) != nil {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	token, err := uc.jwtManager.Issue(u.ID)
	if err != nil {
		uc.l.Errorf(ctx, "jwtManager.Issue: %v", err)
		return user.AuthOutput{}, err
	}
	return user.AuthOutput{Token: token, User: u}, nil
}
