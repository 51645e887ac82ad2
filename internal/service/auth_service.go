package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	config "github.com/maheshrc27/sheetcal/configs"
	"github.com/maheshrc27/sheetcal/internal/transfer"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type AuthService interface {
	LoginCallback(ctx context.Context, code string) (string, error)
}

type authService struct {
	cfg config.Config
}

func NewAuthService(cfg config.Config) AuthService {
	return &authService{cfg: cfg}
}

// LoginCallback exchanges the OAuth code, fetches the Google account behind
// it and checks the email against the configured allow-list. The verified
// email becomes the session subject.
func (s *authService) LoginCallback(ctx context.Context, code string) (string, error) {
	if code == "" {
		err := errors.New("authorization code is empty")
		slog.Info(err.Error())
		return "", err
	}

	oauth2Config := &oauth2.Config{
		ClientID:     s.cfg.GoogleClientID,
		ClientSecret: s.cfg.GoogleClientSecret,
		RedirectURL:  s.cfg.GoogleRedirectURI,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}

	if oauth2Config.ClientID == "" || oauth2Config.ClientSecret == "" || oauth2Config.RedirectURL == "" {
		err := errors.New("OAuth2 configuration is incomplete")
		slog.Info(err.Error())
		return "", err
	}

	token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	client := oauth2Config.Client(ctx, token)

	userInfo, err := GetUserInfo(client)
	if err != nil {
		return "", err
	}

	if !s.emailAllowed(userInfo.Email) {
		err := fmt.Errorf("email %s is not authorized", userInfo.Email)
		slog.Info(err.Error())
		return "", err
	}

	return userInfo.Email, nil
}

func (s *authService) emailAllowed(email string) bool {
	if len(s.cfg.AllowedEmails) == 0 {
		return false
	}
	for _, allowed := range s.cfg.AllowedEmails {
		if strings.EqualFold(allowed, email) {
			return true
		}
	}
	return false
}

func GetUserInfo(client *http.Client) (*transfer.GoogleUserInfo, error) {
	userInfoURL := "https://www.googleapis.com/oauth2/v1/userinfo"

	response, err := client.Get(userInfoURL)
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("error fetching user info: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		slog.Info("Unexpected response status")
		return nil, fmt.Errorf("unexpected response status: %d", response.StatusCode)
	}

	var userInfo transfer.GoogleUserInfo
	if err := json.NewDecoder(response.Body).Decode(&userInfo); err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("error decoding user info: %w", err)
	}

	return &userInfo, nil
}
