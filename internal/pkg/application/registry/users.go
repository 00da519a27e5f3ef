package registry

import (
	"context"
	"errors"
	"strings"

	"github.com/diwise/iot-asset-registry/internal/pkg/infrastructure/storage"
	"github.com/diwise/iot-asset-registry/pkg/types"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *service) CreateUser(ctx context.Context, user types.User) (types.User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	if user.Role == "" {
		user.Role = types.RoleViewer
	}

	err := validateUser(user, true)
	if err != nil {
		return types.User{}, err
	}

	hash, err := hashPassword(user.Password)
	if err != nil {
		return types.User{}, err
	}
	user.Password = hash

	user.UserID = uuid.NewString()

	err = s.storage.AddUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return types.User{}, ErrAlreadyExists
		}
		return types.User{}, err
	}

	return user, nil
}

func (s *service) GetUser(ctx context.Context, userID string) (types.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return types.User{}, ErrInvalidID
	}

	user, err := s.storage.GetUser(ctx, storage.WithUserID(userID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}

	return user, nil
}

func (s *service) QueryUsers(ctx context.Context, params map[string][]string) (types.Collection[types.User], error) {
	return s.storage.QueryUsers(ctx, storage.ParseConditions(ctx, params)...)
}

func (s *service) UpdateUser(ctx context.Context, userID string, fields map[string]any) (types.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return types.User{}, ErrInvalidID
	}

	current, err := s.storage.GetUser(ctx, storage.WithUserID(userID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}

	if password, ok := fields["password"].(string); ok {
		if password == "" {
			return types.User{}, &ValidationError{Field: "password", Reason: "required"}
		}
		hash, err := hashPassword(password)
		if err != nil {
			return types.User{}, err
		}
		fields["password"] = hash
	}

	user, err := merge(current, fields)
	if err != nil {
		return types.User{}, err
	}

	user.UserID = userID
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	err = validateUser(user, true)
	if err != nil {
		return types.User{}, err
	}

	err = s.storage.UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return types.User{}, ErrAlreadyExists
		}
		if errors.Is(err, storage.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}

	return user, nil
}

func (s *service) DeleteUser(ctx context.Context, userID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return ErrInvalidID
	}

	return s.guard.DeleteUser(ctx, userID)
}
