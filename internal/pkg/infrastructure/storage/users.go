package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/diwise/iot-asset-registry/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddUser(ctx context.Context, user types.User) error {
	data, _ := json.Marshal(user)

	var m map[string]any
	json.Unmarshal(data, &m)

	delete(m, "id")
	delete(m, "email")

	data, _ = json.Marshal(m)

	args := pgx.NamedArgs{
		"user_id": user.UserID,
		"email":   user.Email,
		"data":    string(data),
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO users (user_id, email, data)
		VALUES (@user_id, @email, @data)
	`, args)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}

	return nil
}

func (s *Storage) GetUser(ctx context.Context, conditions ...ConditionFunc) (types.User, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where("users")

	var userID, email string
	var data json.RawMessage

	query := fmt.Sprintf(`
		SELECT user_id, email, data
		FROM users
		%s
	`, where)

	err := s.pool.QueryRow(ctx, query, args).Scan(&userID, &email, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.User{}, ErrNoRows
		}
		return types.User{}, err
	}

	var user types.User
	err = json.Unmarshal(data, &user)
	if err != nil {
		return types.User{}, err
	}

	user.UserID = userID
	user.Email = email

	return user, nil
}

func (s *Storage) QueryUsers(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.User], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where("users")

	var userID, email string
	var data json.RawMessage
	var count int64

	query := fmt.Sprintf(`
		SELECT user_id, email, data, count(*) OVER () AS count
		FROM users
		%s
		%s
		%s
	`, where, condition.OrderBy("email"), condition.OffsetLimit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.User]{}, err
	}

	users := make([]types.User, 0)

	_, err = pgx.ForEachRow(rows, []any{&userID, &email, &data, &count}, func() error {
		var user types.User

		err := json.Unmarshal(data, &user)
		if err != nil {
			return err
		}

		user.UserID = userID
		user.Email = email
		users = append(users, user)

		return nil
	})
	if err != nil {
		return types.Collection[types.User]{}, err
	}

	return types.Collection[types.User]{
		Data:       users,
		Count:      uint64(len(users)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

func (s *Storage) UpdateUser(ctx context.Context, user types.User) error {
	data, _ := json.Marshal(user)

	var m map[string]any
	json.Unmarshal(data, &m)

	delete(m, "id")
	delete(m, "email")

	data, _ = json.Marshal(m)

	args := pgx.NamedArgs{
		"user_id": user.UserID,
		"email":   user.Email,
		"data":    string(data),
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE users
		SET email = @email, data = @data, modified_on = CURRENT_TIMESTAMP
		WHERE user_id = @user_id
	`, args)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

// DeleteUser removes the user unless any device still references it as
// owner. The count and the delete run in the same transaction so that no
// device can appear in between.
func (s *Storage) DeleteUser(ctx context.Context, userID string) (int64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var dependents int64

	err = tx.QueryRow(ctx, `
		SELECT count(*) FROM devices WHERE owner_id = @user_id
	`, pgx.NamedArgs{"user_id": userID}).Scan(&dependents)
	if err != nil {
		return 0, err
	}

	if dependents > 0 {
		return dependents, ErrHasDependents
	}

	tag, err := tx.Exec(ctx, `
		DELETE FROM users WHERE user_id = @user_id
	`, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return 0, err
	}

	if tag.RowsAffected() == 0 {
		return 0, ErrNoRows
	}

	return 0, tx.Commit(ctx)
}
