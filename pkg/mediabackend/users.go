package mediabackend

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// RegisterUser creates an account, recovering once from a primary-key
// collision. User rows are occasionally seeded out of band with explicit
// ids, which desyncs the store's auto-increment counter from the true
// maximum key; when the normal create reports a primary-key conflict the
// service recomputes max(id)+1 and retries exactly once with that
// explicit key. Conflicts on any other column (the unique email)
// propagate unmodified.
func (s *service) RegisterUser(ctx context.Context, req RegisterUserRequest) (*User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, &ValidationError{Reason: "name, email and password are required"}
	}
	if len(req.Password) < minPasswordLength {
		return nil, &ValidationError{Field: "password", Reason: "password must be at least 6 characters"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &User{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.repository.CreateUser(ctx, user)
	if err == nil {
		s.logger.Info("user registered", "user_id", user.ID)
		return user, nil
	}

	var cv *ConstraintViolation
	if !errors.As(err, &cv) || !cv.PrimaryKey {
		return nil, err
	}

	maxID, merr := s.repository.MaxUserID(ctx)
	if merr != nil {
		return nil, merr
	}
	user.ID = maxID + 1
	s.logger.Warn("primary key collision on user create, retrying with explicit key",
		"fallback_id", user.ID)

	if err := s.repository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// AuthenticateUser verifies credentials. It reports the same
// ValidationError for an unknown email and a wrong password so the
// response does not reveal which one failed.
func (s *service) AuthenticateUser(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, &ValidationError{Reason: "email and password are required"}
	}

	user, err := s.repository.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &ValidationError{Reason: "invalid email or password"}
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, &ValidationError{Reason: "invalid email or password"}
	}

	return user, nil
}

func (s *service) GetUser(ctx context.Context, id int64) (*User, error) {
	return s.repository.GetUser(ctx, id)
}

func (s *service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.repository.ListUsers(ctx)
}

// UpdateUser applies a profile change. The current password is required
// for any change; an email change is pre-checked against the unique
// index so the common case reports a clean conflict rather than a
// driver error.
func (s *service) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*User, error) {
	user, err := s.repository.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CurrentPassword == "" {
		return nil, &ValidationError{Field: "currentPassword", Reason: "current password is required to update profile"}
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return nil, &ValidationError{Field: "currentPassword", Reason: "current password is incorrect"}
	}

	if email := normalizeEmail(req.Email); email != "" && email != user.Email {
		existing, err := s.repository.GetUserByEmail(ctx, email)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, &ConstraintViolation{
				Constraint: "users_email_key",
				Err:        errors.New("email is already in use by another account"),
			}
		}
		user.Email = email
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}

	if req.NewPassword != "" {
		if len(req.NewPassword) < minPasswordLength {
			return nil, &ValidationError{Field: "newPassword", Reason: "new password must be at least 6 characters long"}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.repository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
