package auth

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"taskman/config"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/domain/service"
)

// maxPasswordBytes is the longest input bcrypt hashes. It applies whatever MaxLength says.
const maxPasswordBytes = 72

type passwordPolicy struct {
	cfg config.PasswordPolicyConfig
}

// NewPasswordPolicy builds the configurable password acceptance rule.
func NewPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	p := &passwordPolicy{}
	if cfg != nil && cfg.PasswordPolicy != nil {
		p.cfg = *cfg.PasswordPolicy
	}

	return p
}

// Validate checks the password against every enabled rule and reports the first failure.
func (p *passwordPolicy) Validate(password string) error {
	length := utf8.RuneCountInString(password)

	switch {
	case p.cfg.MinLength > 0 && length < p.cfg.MinLength:
		return domainerrors.ErrPasswordPolicy.WithDetails("must be at least " + strconv.Itoa(p.cfg.MinLength) + " characters long")
	case p.cfg.MaxLength > 0 && length > p.cfg.MaxLength:
		return domainerrors.ErrPasswordPolicy.WithDetails("must be at most " + strconv.Itoa(p.cfg.MaxLength) + " characters long")
	case len(password) > maxPasswordBytes:
		return domainerrors.ErrPasswordPolicy.WithDetails("must be at most " + strconv.Itoa(maxPasswordBytes) + " bytes long")
	case p.cfg.RequireLowercase && !hasLowercase(password):
		return domainerrors.ErrPasswordPolicy.WithDetails("must contain at least one lowercase letter")
	case p.cfg.RequireUppercase && !hasUppercase(password):
		return domainerrors.ErrPasswordPolicy.WithDetails("must contain at least one uppercase letter")
	case p.cfg.RequireNumbers && !hasNumbers(password):
		return domainerrors.ErrPasswordPolicy.WithDetails("must contain at least one number")
	case p.cfg.RequireSpecial && !hasSpecialChars(password):
		return domainerrors.ErrPasswordPolicy.WithDetails("must contain at least one special character")
	}

	return nil
}

func hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}
