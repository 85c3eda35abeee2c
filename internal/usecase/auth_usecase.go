package usecase

import (
	"context"
	"errors"

	"talenthub/internal/domain/account"
	"talenthub/internal/pkg/jwt"
	ucauth "talenthub/internal/usecase/auth"
)

var ErrInternal = errors.New("internal error")

type AuthUsecase interface {
	Signup(ctx context.Context, role account.Role, in ucauth.SignupInput) (account.Account, string, error)
	Login(ctx context.Context, role account.Role, in ucauth.LoginInput) (account.Account, string, error)
	VerifyEmail(ctx context.Context, email, code string) (account.Account, error)
}

type Auth struct {
	authSvc *ucauth.Service
	jwt     jwt.Service
}

func NewAuthUsecase(authSvc *ucauth.Service, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: authSvc, jwt: jwtSvc}
}

func (u *Auth) Signup(ctx context.Context, role account.Role, in ucauth.SignupInput) (account.Account, string, error) {
	a, err := u.authSvc.Signup(ctx, role, in)
	if err != nil {
		return account.Account{}, "", err
	}

	token, err := u.jwt.Generate(a.ID, string(a.Role))
	if err != nil {
		return account.Account{}, "", ErrInternal
	}

	return a, token, nil
}

func (u *Auth) Login(ctx context.Context, role account.Role, in ucauth.LoginInput) (account.Account, string, error) {
	a, err := u.authSvc.Login(ctx, role, in)
	if err != nil {
		return account.Account{}, "", err
	}

	token, err := u.jwt.Generate(a.ID, string(a.Role))
	if err != nil {
		return account.Account{}, "", ErrInternal
	}

	return a, token, nil
}

func (u *Auth) VerifyEmail(ctx context.Context, email, code string) (account.Account, error) {
	return u.authSvc.VerifyEmail(ctx, email, code)
}
