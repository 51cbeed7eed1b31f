package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"internmatch/internal/auth"
	apperrors "internmatch/internal/errors"
	"internmatch/internal/model"
	"internmatch/internal/repository"
	"internmatch/internal/snapshot"
	"internmatch/internal/validation"
)

const (
	invalidTypesMessage = "One or more fields have invalid data types. Age and grade must be whole numbers, gpa must be a number."
	gpaRangeMessage     = "gpa must have at most 4 decimal places and be smaller than 100000000"
)

// SignupInput is the student signup payload. Every field is required.
type SignupInput struct {
	Username         string        `json:"username" validate:"required,max=150"`
	Password         string        `json:"password" validate:"required"`
	FirstName        string        `json:"first_name" validate:"required"`
	LastName         string        `json:"last_name" validate:"required"`
	School           string        `json:"school" validate:"required"`
	EmailPersonal    string        `json:"email_personal" validate:"required"`
	EmailSchool      string        `json:"email_school" validate:"required"`
	Age              model.Numeric `json:"age" validate:"required" swaggertype:"integer"`
	Grade            model.Numeric `json:"grade" validate:"required" swaggertype:"integer"`
	Extracurriculars string        `json:"extracurriculars" validate:"required"`
	Interests        string        `json:"interests" validate:"required"`
	GPA              model.Numeric `json:"gpa" validate:"required" swaggertype:"number"`
	Courses          string        `json:"courses" validate:"required"`
}

// AdminSignupInput is the admin signup payload.
type AdminSignupInput struct {
	Username   string `json:"username" validate:"required,max=150"`
	Password   string `json:"password" validate:"required"`
	SchoolName string `json:"school_name" validate:"required"`
	Email      string `json:"email" validate:"required"`
}

// AuthService handles accounts, credentials and token resolution.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (string, error)
	Login(ctx context.Context, username, password string) (string, *model.User, error)
	AdminSignup(ctx context.Context, in AdminSignupInput) (string, error)
	AdminLogin(ctx context.Context, username, password string) (string, *model.Admin, error)
	ResolveToken(ctx context.Context, token string) (*auth.Identity, error)
	UpdateProfile(ctx context.Context, token string, fields map[string]interface{}) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	adminRepo  repository.AdminRepository
	identities auth.IdentityStoreInterface
	snapshots  snapshot.Store
	bcryptCost int
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	adminRepo repository.AdminRepository,
	identities auth.IdentityStoreInterface,
	snapshots snapshot.Store,
	bcryptCost int,
) AuthService {
	if identities == nil {
		identities = auth.NewIdentityStore(nil, 0)
	}
	if snapshots == nil {
		snapshots = snapshot.Nop{}
	}
	return &authService{
		userRepo:   userRepo,
		adminRepo:  adminRepo,
		identities: identities,
		snapshots:  snapshots,
		bcryptCost: bcryptCost,
	}
}

// Signup creates a student account and returns its token.
func (s *authService) Signup(ctx context.Context, in SignupInput) (string, error) {
	if err := validation.Struct(in); err != nil {
		return "", err
	}

	age, err := in.Age.Int()
	if err != nil {
		return "", apperrors.Validation(invalidTypesMessage)
	}
	grade, err := in.Grade.Int()
	if err != nil {
		return "", apperrors.Validation(invalidTypesMessage)
	}
	gpa, err := in.GPA.Decimal()
	if err != nil {
		return "", apperrors.Validation(invalidTypesMessage)
	}
	if gpa.Valid && !model.FitsGPAColumn(gpa.Decimal) {
		return "", apperrors.Validation(gpaRangeMessage)
	}

	existing, err := s.userRepo.FindByUsername(ctx, in.Username)
	if err == nil && existing != nil {
		return "", apperrors.Conflict("Username '%s' is already taken. Please choose another.", in.Username)
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperrors.Internal(err, "check user existence")
	}

	hashed, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return "", apperrors.Internal(err, "hash password")
	}
	token, err := auth.NewToken()
	if err != nil {
		return "", apperrors.Internal(err, "issue token")
	}

	user := &model.User{
		Username:         in.Username,
		PasswordHash:     hashed,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		School:           in.School,
		EmailPersonal:    in.EmailPersonal,
		EmailSchool:      in.EmailSchool,
		Age:              age,
		Grade:            grade,
		Extracurriculars: in.Extracurriculars,
		Interests:        in.Interests,
		GPA:              gpa,
		Courses:          in.Courses,
		AuthToken:        token,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", apperrors.Conflict("Username '%s' is already taken. Please choose another.", in.Username)
		}
		return "", apperrors.Internal(err, "create user")
	}

	log.Info().Str("username", user.Username).Msg("student signed up")
	return token, nil
}

// Login checks credentials and returns the token issued at signup.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	if username == "" || password == "" {
		return "", nil, apperrors.Validation("Username and password are required")
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.Unauthorized("Invalid username or password")
		}
		return "", nil, apperrors.Internal(err, "find user")
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, apperrors.Unauthorized("Invalid username or password")
	}

	return user.AuthToken, user, nil
}

// AdminSignup creates an admin account and returns its token.
func (s *authService) AdminSignup(ctx context.Context, in AdminSignupInput) (string, error) {
	if err := validation.Struct(in); err != nil {
		return "", err
	}

	existing, err := s.adminRepo.FindByUsername(ctx, in.Username)
	if err == nil && existing != nil {
		return "", apperrors.Conflict("Admin username '%s' already exists", in.Username)
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperrors.Internal(err, "check admin existence")
	}

	hashed, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return "", apperrors.Internal(err, "hash password")
	}
	token, err := auth.NewToken()
	if err != nil {
		return "", apperrors.Internal(err, "issue token")
	}

	admin := &model.Admin{
		Username:     in.Username,
		PasswordHash: hashed,
		SchoolName:   in.SchoolName,
		Email:        in.Email,
		AuthToken:    token,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", apperrors.Conflict("Admin username '%s' already exists", in.Username)
		}
		return "", apperrors.Internal(err, "create admin")
	}

	log.Info().Str("username", admin.Username).Str("school", admin.SchoolName).Msg("admin signed up")
	return token, nil
}

// AdminLogin checks admin credentials.
func (s *authService) AdminLogin(ctx context.Context, username, password string) (string, *model.Admin, error) {
	if username == "" || password == "" {
		return "", nil, apperrors.Validation("Username and password are required")
	}

	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.Unauthorized("Invalid admin credentials")
		}
		return "", nil, apperrors.Internal(err, "find admin")
	}

	if !auth.CheckPassword(admin.PasswordHash, password) {
		return "", nil, apperrors.Unauthorized("Invalid admin credentials")
	}

	return admin.AuthToken, admin, nil
}

// ResolveToken maps a bearer token to its account. Students take precedence over admins.
func (s *authService) ResolveToken(ctx context.Context, token string) (*auth.Identity, error) {
	if token == "" {
		return nil, apperrors.Unauthorized("Invalid or missing auth token")
	}

	if identity, ok := s.identities.Get(ctx, token); ok {
		return identity, nil
	}

	identity, err := s.lookupToken(ctx, token)
	if err != nil {
		return nil, err
	}

	_ = s.identities.Put(ctx, token, identity)
	return identity, nil
}

func (s *authService) lookupToken(ctx context.Context, token string) (*auth.Identity, error) {
	user, err := s.userRepo.FindByToken(ctx, token)
	if err == nil {
		return auth.StudentIdentity(user), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal(err, "resolve student token")
	}

	admin, err := s.adminRepo.FindByToken(ctx, token)
	if err == nil {
		return auth.AdminIdentity(admin), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal(err, "resolve admin token")
	}

	return nil, apperrors.Unauthorized("Invalid or missing auth token")
}

// UpdateProfile applies whitelisted profile fields for the student behind token.
// Unknown fields are ignored; at least one known field is required.
func (s *authService) UpdateProfile(ctx context.Context, token string, fields map[string]interface{}) (*model.User, error) {
	identity, err := s.ResolveToken(ctx, token)
	if err != nil {
		return nil, err
	}
	// Admin tokens do not identify a student profile.
	if !identity.IsStudent() {
		return nil, apperrors.Unauthorized("Only student profiles can be updated")
	}

	updates, err := profileUpdates(fields)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return nil, apperrors.Validation("No valid fields provided for update")
	}

	username := identity.Student.Username
	if err := s.userRepo.UpdateFields(ctx, username, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, apperrors.Internal(err, "update profile")
	}

	_ = s.identities.Invalidate(ctx, token)

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.Internal(err, "reload profile")
	}

	if err := s.snapshots.Save(ctx, username, user); err != nil {
		log.Warn().Err(err).Str("username", username).Msg("profile snapshot failed")
	}

	log.Info().Str("username", username).Int("fields", len(updates)).Msg("profile updated")
	return user, nil
}

func profileUpdates(fields map[string]interface{}) (map[string]interface{}, error) {
	updates := make(map[string]interface{})
	for key, value := range fields {
		column, ok := model.ProfileColumns[key]
		if !ok {
			continue
		}

		switch key {
		case "age", "grade":
			n, err := model.NumericFrom(value)
			if err != nil {
				return nil, apperrors.Validation(invalidTypesMessage)
			}
			v, err := n.Int()
			if err != nil {
				return nil, apperrors.Validation(invalidTypesMessage)
			}
			if v == nil {
				updates[column] = nil
			} else {
				updates[column] = *v
			}
		case "gpa":
			n, err := model.NumericFrom(value)
			if err != nil {
				return nil, apperrors.Validation(invalidTypesMessage)
			}
			d, err := n.Decimal()
			if err != nil {
				return nil, apperrors.Validation(invalidTypesMessage)
			}
			if d.Valid && !model.FitsGPAColumn(d.Decimal) {
				return nil, apperrors.Validation(gpaRangeMessage)
			}
			updates[column] = d
		default:
			text, err := textValue(value)
			if err != nil {
				return nil, apperrors.Validation("Field '%s' must be text", key)
			}
			updates[column] = text
		}
	}
	return updates, nil
}

func textValue(v interface{}) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case float64, bool:
		return fmt.Sprint(val), nil
	default:
		return "", fmt.Errorf("unsupported type %T", v)
	}
}
