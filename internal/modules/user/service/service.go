package service

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"anoa.com/arcadehub/internal/entity"
	"anoa.com/arcadehub/internal/modules/user/dto"
	"anoa.com/arcadehub/internal/modules/user/repository"
	"anoa.com/arcadehub/pkg/apperror"
	"anoa.com/arcadehub/pkg/storage"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error)
	Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, avatar dto.AvatarFile) (*entity.User, error)
	// ApplyGameResult bumps the running totals after one mini-game session and
	// reports whether the player leveled up. Totals only ever increase.
	ApplyGameResult(ctx context.Context, userID uuid.UUID, coinsEarned, xpEarned, score int) (*entity.User, bool, error)
}

type authService struct {
	repo         repository.UserRepository
	imageStorage storage.ImageStorage
	secret       string
	tokenTTL     time.Duration
}

func NewAuthService(repo repository.UserRepository, imageStorage storage.ImageStorage) AuthService {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "change-me"
	}

	ttl := 24 * time.Hour
	if ttlStr := os.Getenv("JWT_TTL_MINUTES"); ttlStr != "" {
		if minutes, err := strconv.Atoi(ttlStr); err == nil {
			ttl = time.Duration(minutes) * time.Minute
		}
	}

	return &authService{
		repo:         repo,
		imageStorage: imageStorage,
		secret:       secret,
		tokenTTL:     ttl,
	}
}

func (s *authService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return nil, apperror.New(409, "username already taken", apperror.ErrBadRequest)
	}
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperror.New(409, "email already registered", apperror.ErrBadRequest)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Coins:        entity.StartingCoins,
		Level:        1,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.buildAuthResponse(user)
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperror.ErrUnauthorized
	}

	return s.buildAuthResponse(user)
}

func (s *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.repo.FindByID(ctx, userID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatar dto.AvatarFile) (*entity.User, error) {
	if s.imageStorage == nil {
		return nil, apperror.New(503, "image storage is not configured", apperror.ErrInternal)
	}

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	url, err := s.imageStorage.UploadImage(ctx, avatar.Reader, "avatars", avatar.FileName)
	if err != nil {
		return nil, err
	}

	if user.AvatarURL != nil && *user.AvatarURL != "" {
		// Best effort; the new avatar is already uploaded.
		_ = s.imageStorage.DeleteImage(ctx, *user.AvatarURL)
	}

	user.AvatarURL = &url
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) ApplyGameResult(ctx context.Context, userID uuid.UUID, coinsEarned, xpEarned, score int) (*entity.User, bool, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	user.Coins += coinsEarned
	user.XP += xpEarned
	user.TotalScore += score
	user.GamesPlayed++

	leveledUp := false
	if newLevel := entity.LevelForXP(user.XP); newLevel > user.Level {
		user.Level = newLevel
		user.Coins += entity.LevelUpBonus
		leveledUp = true
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, false, err
	}

	return user, leveledUp, nil
}

func (s *authService) buildAuthResponse(user *entity.User) (*dto.AuthResponse, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
		User:        user,
	}, nil
}
