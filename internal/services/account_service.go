package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/anonto42/tweetbox/backend/internal/models"
	"github.com/anonto42/tweetbox/backend/internal/repositories"
	"github.com/anonto42/tweetbox/backend/pkg/errorx"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var errBadCredentials = errorx.New(errorx.Unauthenticated, "Please enter a correct username and password.")

// AccountService signs users up and checks their credentials.
type AccountService struct {
	users      repositories.UserRepository
	validate   Validator
	bcryptCost int
}

func NewAccountService(users repositories.UserRepository, validate Validator, bcryptCost int) *AccountService {
	return &AccountService{users: users, validate: validate, bcryptCost: bcryptCost}
}

func (s *AccountService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	if err := s.validate.Validate(&req); err != nil {
		return nil, err
	}
	if msg := passwordProblem(req.Username, req.Email, req.Password1); msg != "" {
		return nil, errorx.NewValidation(map[string]string{"password2": msg})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password1), s.bcryptCost)
	if err != nil {
		return nil, errorx.Wrap(err, "failed to hash password")
	}

	user := &models.User{Username: req.Username, Email: req.Email, Password: string(hash)}
	err = s.users.CreateUser(ctx, user)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, errorx.NewValidation(map[string]string{"username": "A user with that username already exists."})
	}
	if err != nil {
		return nil, errorx.Wrap(err, "failed to create user")
	}
	return user, nil
}

// Authenticate returns the user owning username when password matches.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errBadCredentials
	}
	if err != nil {
		return nil, errorx.Wrap(err, "failed to load user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errBadCredentials
	}
	return user, nil
}

// User loads a signed-in user by id.
func (s *AccountService) User(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorx.New(errorx.Unauthenticated, "account no longer exists")
	}
	if err != nil {
		return nil, errorx.Wrap(err, "failed to load user %d", id)
	}
	return user, nil
}

// maxPasswordSimilarity is the share of characters a password may have in
// common with the username or email before it is rejected.
const maxPasswordSimilarity = 0.7

var attributeSeparator = regexp.MustCompile(`\W+`)

func passwordProblem(username, email, password string) string {
	if tooSimilar(password, username) {
		return "The password is too similar to the username."
	}
	if tooSimilar(password, email) {
		return "The password is too similar to the email address."
	}
	if strings.IndexFunc(password, func(r rune) bool { return !unicode.IsDigit(r) }) < 0 {
		return "This password is entirely numeric."
	}
	return ""
}

// tooSimilar compares password with value and with each word of value.
func tooSimilar(password, value string) bool {
	if value == "" {
		return false
	}
	password = strings.ToLower(password)
	parts := append(attributeSeparator.Split(value, -1), value)
	for _, part := range parts {
		part = strings.ToLower(part)
		if part == "" || muchLongerThan(password, part) {
			continue
		}
		if quickRatio(password, part) >= maxPasswordSimilarity {
			return true
		}
	}
	return false
}

// muchLongerThan reports whether password is so long that value cannot
// account for a meaningful part of it.
func muchLongerThan(password, value string) bool {
	pwdLen := utf8.RuneCountInString(password)
	valueLen := utf8.RuneCountInString(value)
	return pwdLen >= 10*valueLen && float64(valueLen) < maxPasswordSimilarity/2*float64(pwdLen)
}

// quickRatio is 2*M/T, where M counts the characters a and b have in common
// regardless of order and T is their combined length.
func quickRatio(a, b string) float64 {
	avail := make(map[rune]int)
	for _, r := range b {
		avail[r]++
	}
	matches, total := 0, utf8.RuneCountInString(b)
	for _, r := range a {
		total++
		if avail[r] > 0 {
			avail[r]--
			matches++
		}
	}
	if total == 0 {
		return 0
	}
	return 2 * float64(matches) / float64(total)
}
