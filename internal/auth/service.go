package auth

import (
	"context"
	"log"

	"github.com/scripturalzealous/zealous-api/internal/mail"
	"github.com/scripturalzealous/zealous-api/pkg/util"
)

type AuthService struct {
	repo Repository
	mail *mail.Mailer
}

func NewAuthService(repo Repository, mail *mail.Mailer) AuthService {
	return AuthService{
		repo: repo,
		mail: mail,
	}
}

func (h *AuthService) Register(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	hashed, err := util.HashPasswordBcrypt(password)
	if err != nil {
		return nil, err
	}

	user := User{Email: email, Password: hashed}

	_, err = h.repo.CreateUser(ctx, user)
	if err != nil {
		log.Printf("Service err: %v", err.Error())
		return nil, err
	}

	logInUser, err := h.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"Name":   email,
		"AppURL": "https://zealous.app",
	}

	// Send welcome mail asynchronously
	go func() {
		if err := h.mail.SendHTML(email, "Welcome to Zealous", "welcome.html", data); err != nil {
			log.Printf("failed to send welcome email: %v", err)
		}
	}()

	return logInUser, nil
}

func (h *AuthService) Login(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := h.repo.GetUserByEmail(ctx, email)
	if err != nil {
		log.Printf("Service err: %v", err.Error())
		return nil, ErrInvalidCredentials
	}

	if err := util.ComparePasswordBcrypt(user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	user.Token = token

	return user, nil
}

func (h *AuthService) GetUserDetails(ctx context.Context, userID int) (*User, error) {
	user, err := h.repo.GetUserByID(ctx, userID)
	if err != nil {
		log.Printf("error fetching user: %v", err)
		return nil, ErrUserNotFound
	}
	return user, nil
}
