package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"medapp-server/internal/auth"
	"medapp-server/internal/models"
)

// CredentialStore owns user records. Only digests are ever persisted.
type CredentialStore struct {
	db     *gorm.DB
	hasher *auth.Hasher

	// dummyDigest is compared against on unknown emails so both failure paths cost a bcrypt round.
	dummyDigest string
}

// NewCredentialStore creates a CredentialStore.
func NewCredentialStore(db *gorm.DB, hasher *auth.Hasher) (*CredentialStore, error) {
	dummy, err := hasher.Hash("medapp-timing-equalizer")
	if err != nil {
		return nil, err
	}
	return &CredentialStore{db: db, hasher: hasher, dummyDigest: dummy}, nil
}

// Register creates a user. The email must not already be registered; the
// match is exact as stored.
func (s *CredentialStore) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Name: name, Email: email, PasswordHash: digest}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if count > 0 {
			return ErrEmailTaken
		}
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailTaken
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// FindByEmail returns ErrUserNotFound when no user has email.
func (s *CredentialStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// FindByID returns ErrUserNotFound when id is unknown.
func (s *CredentialStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return first[models.User](s.db.WithContext(ctx), id, ErrUserNotFound)
}

// Authenticate checks an email and password pair. Unknown emails and wrong
// passwords both yield auth.ErrInvalidCredentials.
func (s *CredentialStore) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.FindByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		s.hasher.Verify(password, s.dummyDigest)
		return nil, auth.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, auth.ErrInvalidCredentials
	}
	return user, nil
}
