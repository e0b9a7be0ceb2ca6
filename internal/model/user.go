package model

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrUserExists             = errors.New("user already exists")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrPasswordPolicyViolated = errors.New("password policy violated")
)

const (
	minPasswordLength = 12
	maxPasswordLength = 64
)

//go:generate mockgen -destination ../service/auth/mocks/users_repo.go -package mocks . UsersRepository
type UsersRepository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByLogin(ctx context.Context, login string) (*User, error)
}

type User struct {
	ID           int
	Login        string
	PasswordHash string
	Role         Role
}

func NewUser(login string) *User {
	return &User{Login: login, Role: RoleUser}
}

func ValidatePassword(password string) error {
	passLength := utf8.RuneCountInString(password)
	if passLength < minPasswordLength || passLength > maxPasswordLength {
		return ErrPasswordPolicyViolated
	}

	return nil
}

// Principal is the authenticated caller attached to a request.
type Principal struct {
	UserID int
	Role   Role
}

// CanManage reports whether p may act on a submission owned by ownerID.
func (p Principal) CanManage(ownerID int) bool {
	return p.UserID == ownerID || p.Role.IsPrivileged()
}

type Role int

const (
	RoleUser Role = iota
	RoleAdmin
	RoleSuperAdmin
)

// IsPrivileged reports whether the role may act on submissions it does not own.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "USER"
	case RoleAdmin:
		return "ADMIN"
	case RoleSuperAdmin:
		return "SUPER_ADMIN"
	default:
		return "UNKNOWN"
	}
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r Role) Value() (driver.Value, error) {
	return r.String(), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	return r.fromString(string(text))
}

func (r *Role) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return r.fromString(v)
	case []byte:
		return r.fromString(string(v))
	default:
		return fmt.Errorf("unsupported type %T", src)
	}
}

func (r *Role) fromString(v string) error {
	switch v {
	case "USER":
		*r = RoleUser
	case "ADMIN":
		*r = RoleAdmin
	case "SUPER_ADMIN":
		*r = RoleSuperAdmin
	default:
		return fmt.Errorf("unknown role %q", v)
	}
	return nil
}
