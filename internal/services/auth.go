package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/skuznetsov2019/gw-auth-service/internal/logger"
	"github.com/skuznetsov2019/gw-auth-service/internal/models"
	"github.com/skuznetsov2019/gw-auth-service/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists = errors.New("username already exists")
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password; callers must not be able to tell which check failed.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserDoesNotExist   = errors.New("user does not exist")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) error
}

// UserCacher caches user profiles for identity resolution.
type UserCacher interface {
	Get(ctx context.Context, username string) (*models.UserDB, error)
	Set(ctx context.Context, user *models.UserDB) error
}

// TokenGenerator defines an interface for issuing tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, username string) (string, error)
}

// KafkaWriter writes messages to Kafka.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// userRegisteredEvent is published to Kafka after a successful signup.
type userRegisteredEvent struct {
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

// AuthService handles registration, login and identity resolution.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	cache       UserCacher
	jwt         TokenGenerator
	kafkaWriter KafkaWriter
}

// NewAuthService creates a new AuthService. cache and kafkaWriter may
// be nil; the service then skips caching and event publication.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	cache UserCacher,
	jwt TokenGenerator,
	kafkaWriter KafkaWriter,
) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		jwt:         jwt,
		kafkaWriter: kafkaWriter,
	}
}

// Register creates a new user with a bcrypt-hashed password. The
// existence pre-check handles the common case; the database unique
// constraint closes the race, surfacing as ErrUserAlreadyExists too.
func (svc *AuthService) Register(ctx context.Context, username, password, email string) error {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, email, string(hashedPassword)); err != nil {
		if errors.Is(err, repositories.ErrUsernameTaken) {
			return ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	svc.publishRegistered(ctx, username, email)

	return nil
}

// publishRegistered emits a user.registered event. Publication is best
// effort: a broker failure must not fail the signup that already
// committed.
func (svc *AuthService) publishRegistered(ctx context.Context, username, email string) {
	if svc.kafkaWriter == nil {
		return
	}

	event := userRegisteredEvent{
		Username:     username,
		Email:        email,
		RegisteredAt: time.Now().UTC(),
	}
	value, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal registration event", "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(username),
		Value: value,
	}
	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish registration event", "err", err)
	}
}

// Login authenticates a user and returns a signed token. Unknown
// username and wrong password collapse into the same error.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}

// Identity resolves the authenticated caller's profile, read-through
// via the cache. Login never uses the cache: cached entries carry no
// password hash.
func (svc *AuthService) Identity(ctx context.Context, username string) (*models.UserDB, error) {
	if svc.cache != nil {
		if user, err := svc.cache.Get(ctx, username); err == nil && user != nil {
			return user, nil
		}
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to resolve identity", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, user); err != nil {
			logger.Log.Warnw("failed to cache user", "username", username, "err", err)
		}
	}

	return user, nil
}
