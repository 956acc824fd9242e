package services

import (
	"errors"
	"time"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/repository"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	Repo      *repository.UserRepository
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Repo: repo, JWTSecret: secret, JWTTTL: ttl}
}

var ErrBadCredentials = errors.New("invalid email or password")

type LoginRes struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

func (s *AuthService) Login(email, password string) (*LoginRes, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}

	token, err := utils.GenerateToken(u.ID, u.Role, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &LoginRes{Token: token, User: u}, nil
}

func (s *AuthService) Me(userID uint) (*entity.User, error) {
	u, err := s.Repo.Get(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return u, err
}
