package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"internmatch/internal/auth"
	apperrors "internmatch/internal/errors"
	"internmatch/internal/model"
)

const testBcryptCost = 4

func validSignup() SignupInput {
	return SignupInput{
		Username:         "jdoe",
		Password:         "s3cret",
		FirstName:        "Jane",
		LastName:         "Doe",
		School:           "North High",
		EmailPersonal:    "jane@example.com",
		EmailSchool:      "jdoe@north.edu",
		Age:              "16",
		Grade:            "11",
		Extracurriculars: "Robotics club",
		Interests:        "AI, robotics",
		GPA:              "3.8",
		Courses:          "AP CS",
	}
}

func newTestAuthService(users *MockUserRepository, admins *MockAdminRepository) AuthService {
	return NewAuthService(users, admins, auth.NewIdentityStore(nil, 0), nil, testBcryptCost)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password, testBcryptCost)
	require.NoError(t, err)
	return hash
}

func TestAuthService_Signup(t *testing.T) {
	tests := []struct {
		name         string
		input        func() SignupInput
		setupMock    func(*MockUserRepository)
		expectedKind apperrors.Kind
		expectedMsg  string
	}{
		{
			name:  "successful signup",
			input: validSignup,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "jdoe").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.Username == "jdoe" &&
						u.PasswordHash != "s3cret" &&
						auth.CheckPassword(u.PasswordHash, "s3cret") &&
						u.AuthToken != "" &&
						*u.Age == 16 && *u.Grade == 11 &&
						u.GPA.Valid && u.GPA.Decimal.Equal(decimal.RequireFromString("3.8"))
				})).Return(nil)
			},
		},
		{
			name: "missing fields",
			input: func() SignupInput {
				in := validSignup()
				in.Username = ""
				in.GPA = ""
				return in
			},
			setupMock:    func(m *MockUserRepository) {},
			expectedKind: apperrors.KindValidation,
			expectedMsg:  "The following fields are required: username, gpa",
		},
		{
			name: "non numeric age",
			input: func() SignupInput {
				in := validSignup()
				in.Age = "sixteen"
				return in
			},
			setupMock:    func(m *MockUserRepository) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name: "gpa keeps every submitted digit",
			input: func() SignupInput {
				in := validSignup()
				in.GPA = "3.857"
				return in
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "jdoe").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.GPA.Decimal.String() == "3.857"
				})).Return(nil)
			},
		},
		{
			name: "gpa too precise for storage",
			input: func() SignupInput {
				in := validSignup()
				in.GPA = "3.85712"
				return in
			},
			setupMock:    func(m *MockUserRepository) {},
			expectedKind: apperrors.KindValidation,
			expectedMsg:  gpaRangeMessage,
		},
		{
			name: "gpa too large for storage",
			input: func() SignupInput {
				in := validSignup()
				in.GPA = "100000000"
				return in
			},
			setupMock:    func(m *MockUserRepository) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name: "username longer than its column",
			input: func() SignupInput {
				in := validSignup()
				in.Username = strings.Repeat("u", model.UsernameMaxLen+1)
				return in
			},
			setupMock:    func(m *MockUserRepository) {},
			expectedKind: apperrors.KindValidation,
			expectedMsg:  "Invalid value for: username",
		},
		{
			name:  "username taken",
			input: validSignup,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "jdoe").Return(&model.User{Username: "jdoe"}, nil)
			},
			expectedKind: apperrors.KindConflict,
		},
		{
			name:  "unique violation on insert",
			input: validSignup,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "jdoe").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedKind: apperrors.KindConflict,
		},
		{
			name:  "store failure",
			input: validSignup,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "jdoe").Return(nil, errors.New("connection refused"))
			},
			expectedKind: apperrors.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockAdmins := new(MockAdminRepository)
			tt.setupMock(mockUsers)

			service := newTestAuthService(mockUsers, mockAdmins)
			token, err := service.Signup(context.Background(), tt.input())

			if tt.expectedKind != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
				if tt.expectedMsg != "" {
					assert.EqualError(t, err, tt.expectedMsg)
				}
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}

			mockUsers.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	stored := &model.User{Username: "jdoe", PasswordHash: mustHash(t, "s3cret"), AuthToken: "issued-token", FirstName: "Jane"}

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository)
		expectedKind  apperrors.Kind
		expectedToken string
	}{
		{
			name:     "correct credentials return the signup token",
			username: "jdoe",
			password: "s3cret",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "jdoe").Return(stored, nil)
			},
			expectedToken: "issued-token",
		},
		{
			name:     "wrong password",
			username: "jdoe",
			password: "guess",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "jdoe").Return(stored, nil)
			},
			expectedKind: apperrors.KindUnauthorized,
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "s3cret",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedKind: apperrors.KindUnauthorized,
		},
		{
			name:         "missing credentials",
			username:     "jdoe",
			setupMock:    func(m *MockUserRepository) {},
			expectedKind: apperrors.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			tt.setupMock(mockUsers)

			service := newTestAuthService(mockUsers, new(MockAdminRepository))
			token, user, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedKind != "" {
				assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
				assert.Equal(t, "Jane", user.FirstName)
			}

			mockUsers.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginIsIdempotent(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByUsername", mock.Anything, "jdoe").
		Return(&model.User{Username: "jdoe", PasswordHash: mustHash(t, "pw"), AuthToken: "tok"}, nil)

	service := newTestAuthService(mockUsers, new(MockAdminRepository))
	first, _, err := service.Login(context.Background(), "jdoe", "pw")
	require.NoError(t, err)
	second, _, err := service.Login(context.Background(), "jdoe", "pw")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAuthService_AdminSignupAndLogin(t *testing.T) {
	mockAdmins := new(MockAdminRepository)
	var created *model.Admin
	mockAdmins.On("FindByUsername", mock.Anything, "principal").Return(nil, gorm.ErrRecordNotFound).Once()
	mockAdmins.On("Create", mock.Anything, mock.AnythingOfType("*model.Admin")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*model.Admin) }).
		Return(nil)

	service := newTestAuthService(new(MockUserRepository), mockAdmins)

	_, err := service.AdminSignup(context.Background(), AdminSignupInput{Username: "principal", Password: "pw"})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "school_name, email")

	token, err := service.AdminSignup(context.Background(), AdminSignupInput{
		Username: "principal", Password: "pw", SchoolName: "North High", Email: "p@north.edu",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, token, created.AuthToken)

	mockAdmins.On("FindByUsername", mock.Anything, "principal").Return(created, nil)

	_, err = service.AdminSignup(context.Background(), AdminSignupInput{
		Username: "principal", Password: "pw", SchoolName: "North High", Email: "p@north.edu",
	})
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	got, admin, err := service.AdminLogin(context.Background(), "principal", "pw")
	require.NoError(t, err)
	assert.Equal(t, token, got)
	assert.Equal(t, "North High", admin.SchoolName)

	_, _, err = service.AdminLogin(context.Background(), "principal", "nope")
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestAuthService_ResolveToken(t *testing.T) {
	student := &model.User{Username: "jdoe"}
	admin := &model.Admin{Username: "principal"}

	tests := []struct {
		name         string
		token        string
		setupMock    func(*MockUserRepository, *MockAdminRepository)
		expectedRole auth.Role
		expectedKind apperrors.Kind
	}{
		{
			name:  "student token",
			token: "stu",
			setupMock: func(u *MockUserRepository, a *MockAdminRepository) {
				u.On("FindByToken", mock.Anything, "stu").Return(student, nil)
			},
			expectedRole: auth.RoleStudent,
		},
		{
			name:  "admin token after student miss",
			token: "adm",
			setupMock: func(u *MockUserRepository, a *MockAdminRepository) {
				u.On("FindByToken", mock.Anything, "adm").Return(nil, gorm.ErrRecordNotFound)
				a.On("FindByToken", mock.Anything, "adm").Return(admin, nil)
			},
			expectedRole: auth.RoleAdmin,
		},
		{
			name:  "unknown token",
			token: "nope",
			setupMock: func(u *MockUserRepository, a *MockAdminRepository) {
				u.On("FindByToken", mock.Anything, "nope").Return(nil, gorm.ErrRecordNotFound)
				a.On("FindByToken", mock.Anything, "nope").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedKind: apperrors.KindUnauthorized,
		},
		{
			name:         "empty token",
			token:        "",
			setupMock:    func(u *MockUserRepository, a *MockAdminRepository) {},
			expectedKind: apperrors.KindUnauthorized,
		},
		{
			name:  "store failure",
			token: "stu",
			setupMock: func(u *MockUserRepository, a *MockAdminRepository) {
				u.On("FindByToken", mock.Anything, "stu").Return(nil, errors.New("db down"))
			},
			expectedKind: apperrors.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockAdmins := new(MockAdminRepository)
			tt.setupMock(mockUsers, mockAdmins)

			service := newTestAuthService(mockUsers, mockAdmins)
			identity, err := service.ResolveToken(context.Background(), tt.token)

			if tt.expectedKind != "" {
				assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
				assert.Nil(t, identity)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedRole, identity.Role)
			}

			mockUsers.AssertExpectations(t)
			mockAdmins.AssertExpectations(t)
		})
	}
}

func TestAuthService_ResolveTokenUsesCache(t *testing.T) {
	cached := auth.StudentIdentity(&model.User{Username: "jdoe"})
	store := new(MockIdentityStore)
	store.On("Get", mock.Anything, "tok").Return(cached, true)

	mockUsers := new(MockUserRepository)
	service := NewAuthService(mockUsers, new(MockAdminRepository), store, nil, testBcryptCost)

	identity, err := service.ResolveToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.Same(t, cached, identity)
	mockUsers.AssertNotCalled(t, "FindByToken", mock.Anything, mock.Anything)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	student := &model.User{Username: "jdoe", AuthToken: "tok"}

	tests := []struct {
		name         string
		fields       map[string]interface{}
		identity     func(*MockUserRepository, *MockAdminRepository)
		setupMock    func(*MockUserRepository, *MockSnapshotStore)
		expectedKind apperrors.Kind
	}{
		{
			name:   "applies whitelisted fields with coercion",
			fields: map[string]interface{}{"grade": "12", "gpa": nil, "school": "South High", "username": "hijack", "auth_token": "x"},
			identity: func(u *MockUserRepository, a *MockAdminRepository) {
				u.On("FindByToken", mock.Anything, "tok").Return(student, nil)
			},
			setupMock: func(u *MockUserRepository, s *MockSnapshotStore) {
				u.On("UpdateFields", mock.Anything, "jdoe", map[string]interface{}{
					"grade":  12,
					"gpa":    decimal.NullDecimal{},
					"school": "South High",
				}).Return(nil)
				u.On("FindByUsername", mock.Anything, "jdoe").Return(&model.User{Username: "jdoe", School: "South High"}, nil)
				s.On("Save", mock.Anything, "jdoe", mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:   "snapshot failure does not fail the update",
			fields: map[string]interface{}{"interests": "art"},
			identity: func(u *MockUserRepository, a *MockAdminRepository) {
				u.On("FindByToken", mock.Anything, "tok").Return(student, nil)
			},
			setupMock: func(u *MockUserRepository, s *MockSnapshotStore) {
				u.On("UpdateFields", mock.Anything, "jdoe", map[string]interface{}{"interests": "art"}).Return(nil)
				u.On("FindByUsername", mock.Anything, "jdoe").Return(&model.User{Username: "jdoe"}, nil)
				s.On("Save", mock.Anything, "jdoe", mock.Anything).Return(errors.New("disk full"))
			},
		},
		{
			name:   "no recognized fields",
			fields: map[string]interface{}{"password": "new"},
			identity: func(u *MockUserRepository, a *MockAdminRepository) {
				u.On("FindByToken", mock.Anything, "tok").Return(student, nil)
			},
			setupMock:    func(u *MockUserRepository, s *MockSnapshotStore) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:   "invalid numeric",
			fields: map[string]interface{}{"age": "old"},
			identity: func(u *MockUserRepository, a *MockAdminRepository) {
				u.On("FindByToken", mock.Anything, "tok").Return(student, nil)
			},
			setupMock:    func(u *MockUserRepository, s *MockSnapshotStore) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:   "gpa beyond stored precision",
			fields: map[string]interface{}{"gpa": 3.12345},
			identity: func(u *MockUserRepository, a *MockAdminRepository) {
				u.On("FindByToken", mock.Anything, "tok").Return(student, nil)
			},
			setupMock:    func(u *MockUserRepository, s *MockSnapshotStore) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:   "admin token is unauthorized",
			fields: map[string]interface{}{"school": "X"},
			identity: func(u *MockUserRepository, a *MockAdminRepository) {
				u.On("FindByToken", mock.Anything, "tok").Return(nil, gorm.ErrRecordNotFound)
				a.On("FindByToken", mock.Anything, "tok").Return(&model.Admin{Username: "principal"}, nil)
			},
			setupMock:    func(u *MockUserRepository, s *MockSnapshotStore) {},
			expectedKind: apperrors.KindUnauthorized,
		},
		{
			name:   "unresolved token",
			fields: map[string]interface{}{"school": "X"},
			identity: func(u *MockUserRepository, a *MockAdminRepository) {
				u.On("FindByToken", mock.Anything, "tok").Return(nil, gorm.ErrRecordNotFound)
				a.On("FindByToken", mock.Anything, "tok").Return(nil, gorm.ErrRecordNotFound)
			},
			setupMock:    func(u *MockUserRepository, s *MockSnapshotStore) {},
			expectedKind: apperrors.KindUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockAdmins := new(MockAdminRepository)
			mockSnapshots := new(MockSnapshotStore)
			tt.identity(mockUsers, mockAdmins)
			tt.setupMock(mockUsers, mockSnapshots)

			service := NewAuthService(mockUsers, mockAdmins, auth.NewIdentityStore(nil, 0), mockSnapshots, testBcryptCost)
			user, err := service.UpdateProfile(context.Background(), "tok", tt.fields)

			if tt.expectedKind != "" {
				assert.Equal(t, tt.expectedKind, apperrors.KindOf(err))
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "jdoe", user.Username)
			}

			mockUsers.AssertExpectations(t)
			mockAdmins.AssertExpectations(t)
			mockSnapshots.AssertExpectations(t)
		})
	}
}

func TestAuthService_UpdateProfileIsIdempotent(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("FindByToken", mock.Anything, "tok").Return(&model.User{Username: "jdoe"}, nil)
	mockUsers.On("UpdateFields", mock.Anything, "jdoe", map[string]interface{}{"grade": 11}).Return(nil).Twice()
	grade := 11
	mockUsers.On("FindByUsername", mock.Anything, "jdoe").Return(&model.User{Username: "jdoe", Grade: &grade}, nil)

	service := newTestAuthService(mockUsers, new(MockAdminRepository))
	first, err := service.UpdateProfile(context.Background(), "tok", map[string]interface{}{"grade": float64(11)})
	require.NoError(t, err)
	second, err := service.UpdateProfile(context.Background(), "tok", map[string]interface{}{"grade": float64(11)})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	mockUsers.AssertExpectations(t)
}
