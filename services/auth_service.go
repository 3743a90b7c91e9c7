package services

import (
	"errors"
	"strings"
	"time"

	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/entity"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/repository"
	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles curator login only; accounts are seeded, not
// self-registered.
type AuthService struct {
	curatorRepo *repository.CuratorRepository
	jwtSecret   string
	jwtTTL      time.Duration
}

func NewAuthService(repo *repository.CuratorRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		curatorRepo: repo,
		jwtSecret:   secret,
		jwtTTL:      ttl,
	}
}

func (s *AuthService) Login(email, password string) (string, *entity.Curator, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	curator, err := s.curatorRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(curator.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid email or password")
	}

	token, err := utils.GenerateToken(curator.ID, "curator", s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, curator, nil
}
