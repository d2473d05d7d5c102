package user_test

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"
	"time"

	appuser "github.com/muhammadheryan/snackstore/application/user"
	"github.com/muhammadheryan/snackstore/cmd/config"
	"github.com/muhammadheryan/snackstore/constant"
	redismocks "github.com/muhammadheryan/snackstore/mocks/repository/redis"
	usermocks "github.com/muhammadheryan/snackstore/mocks/repository/user"
	"github.com/muhammadheryan/snackstore/model"
	cerr "github.com/muhammadheryan/snackstore/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type fields struct {
	config    *config.Config
	userRepo  *usermocks.UserRepository
	redisRepo *redismocks.RedisRepository
}

func newFields(t *testing.T) fields {
	return fields{
		config: &config.Config{
			Auth: config.AuthConfig{
				JWTSecret:      "test-secret-key-for-jwt-signing",
				JWTExpiration:  time.Hour,
				SessionExpTime: time.Hour,
			},
		},
		userRepo:  usermocks.NewUserRepository(t),
		redisRepo: redismocks.NewRedisRepository(t),
	}
}

func (f fields) app() appuser.UserApp {
	return appuser.NewUserApp(f.config, f.userRepo, f.redisRepo)
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func checkErr(t *testing.T, err error, wantErr bool, errCode constant.ErrorType) bool {
	t.Helper()
	if (err != nil) != wantErr {
		t.Fatalf("error = %v, wantErr %v", err, wantErr)
	}
	if !wantErr {
		return false
	}
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
	return true
}

// login issues a real token for userID through the Login flow.
func login(t *testing.T, f fields, userID uint64) string {
	t.Helper()
	f.userRepo.
		On("Get", mock.Anything, &model.UserFilter{Email: "bodega@example.com"}).
		Return(&model.UserEntity{ID: userID, Email: "bodega@example.com", PasswordHash: hash(t, "snacks123")}, nil).
		Once()
	f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), userID, time.Hour).Return(nil).Once()

	resp, err := f.app().Login(context.Background(), &model.LoginRequest{Identifier: "bodega@example.com", Password: "snacks123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	return resp.Token
}

func TestUserApp_Register(t *testing.T) {
	req := &model.RegisterRequest{
		Name:     "Bodega Rosita",
		Email:    "rosita@example.com",
		Phone:    "987654321",
		Password: "snacks123",
	}
	tests := []struct {
		name     string
		mockCall func(f fields)
		want     *model.RegisterResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new merchant",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: req.Email}).Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: req.Phone}).Return(nil, nil).Once()
				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Email == req.Email &&
							ent.Phone == req.Phone &&
							bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte(req.Password)) == nil
					})).
					Return(&model.UserEntity{ID: 1, Name: req.Name, Email: req.Email}, nil).
					Once()
			},
			want: &model.RegisterResponse{Name: req.Name, Email: req.Email},
		},
		{
			name: "error: email already registered",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: req.Email}).Return(&model.UserEntity{ID: 5}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: phone already registered",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: req.Email}).Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: req.Phone}).Return(&model.UserEntity{ID: 5}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: repository failure",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: req.Email}).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: create fails",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Twice()
				f.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().Register(context.Background(), req)
			if checkErr(t, err, tt.wantErr, tt.errCode) {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.LoginRequest
		mockCall func(t *testing.T, f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login by phone",
			req:  &model.LoginRequest{Identifier: "987654321", Password: "snacks123"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Phone: "987654321"}).
					Return(&model.UserEntity{ID: 3, Name: "Bodega Rosita", Email: "rosita@example.com", PasswordHash: hash(t, "snacks123")}, nil).
					Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(3), time.Hour).Return(nil).Once()
			},
		},
		{
			name: "error: unknown merchant",
			req:  &model.LoginRequest{Identifier: "nadie@example.com", Password: "snacks123"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "nadie@example.com"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: wrong password",
			req:  &model.LoginRequest{Identifier: "rosita@example.com", Password: "wrong"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "rosita@example.com"}).
					Return(&model.UserEntity{ID: 3, PasswordHash: hash(t, "snacks123")}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: session store failure",
			req:  &model.LoginRequest{Identifier: "rosita@example.com", Password: "snacks123"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "rosita@example.com"}).
					Return(&model.UserEntity{ID: 3, PasswordHash: hash(t, "snacks123")}, nil).
					Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(3), time.Hour).Return(errors.New("redis down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(t, f)

			got, err := f.app().Login(context.Background(), tt.req)
			if checkErr(t, err, tt.wantErr, tt.errCode) {
				return
			}
			if got.Token == "" || got.Email != "rosita@example.com" {
				t.Fatalf("Login() = %+v, want token for rosita@example.com", got)
			}
		})
	}
}

func TestUserApp_ValidateToken(t *testing.T) {
	t.Run("success: valid session", func(t *testing.T) {
		f := newFields(t)
		token := login(t, f, 7)
		f.redisRepo.On("GetSession", mock.Anything, mock.AnythingOfType("string")).Return(uint64(7), nil).Once()

		got, err := f.app().ValidateToken(context.Background(), token)
		if err != nil || got != 7 {
			t.Fatalf("ValidateToken() = %v, %v, want 7", got, err)
		}
	})

	t.Run("error: malformed token", func(t *testing.T) {
		f := newFields(t)
		if _, err := f.app().ValidateToken(context.Background(), "invalid.token.string"); err == nil {
			t.Fatal("ValidateToken() expected error")
		}
	})

	t.Run("error: session expired", func(t *testing.T) {
		f := newFields(t)
		token := login(t, f, 7)
		f.redisRepo.On("GetSession", mock.Anything, mock.AnythingOfType("string")).Return(uint64(0), errors.New("session not found")).Once()

		if _, err := f.app().ValidateToken(context.Background(), token); err == nil {
			t.Fatal("ValidateToken() expected error")
		}
	})

	t.Run("error: session owned by another user", func(t *testing.T) {
		f := newFields(t)
		token := login(t, f, 7)
		f.redisRepo.On("GetSession", mock.Anything, mock.AnythingOfType("string")).Return(uint64(8), nil).Once()

		if _, err := f.app().ValidateToken(context.Background(), token); err == nil {
			t.Fatal("ValidateToken() expected error")
		}
	})
}

func TestUserApp_Logout(t *testing.T) {
	t.Run("success: session dropped", func(t *testing.T) {
		f := newFields(t)
		token := login(t, f, 7)
		f.redisRepo.On("DeleteSession", mock.Anything, mock.AnythingOfType("string")).Return(nil).Once()

		err := f.app().Logout(context.Background(), token)
		checkErr(t, err, false, constant.Successful)
	})

	t.Run("error: garbage token", func(t *testing.T) {
		f := newFields(t)
		err := f.app().Logout(context.Background(), "not-a-token")
		checkErr(t, err, true, constant.ErrUnauthorize)
	})

	t.Run("error: session store failure", func(t *testing.T) {
		f := newFields(t)
		token := login(t, f, 7)
		f.redisRepo.On("DeleteSession", mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

		err := f.app().Logout(context.Background(), token)
		checkErr(t, err, true, constant.ErrInternal)
	})
}

func TestUserApp_GetUser(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f fields)
		want     *model.ProfileResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 4}).
					Return(&model.UserEntity{ID: 4, Name: "Minimarket Sol", Email: "a@b.com", Phone: "912345678"}, nil).
					Once()
			},
			want: &model.ProfileResponse{ID: 4, Name: "Minimarket Sol", Email: "a@b.com", Phone: "912345678"},
		},
		{
			name: "error: not found",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 4}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: repository failure",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 4}).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().GetUser(context.Background(), 4)
			if checkErr(t, err, tt.wantErr, tt.errCode) {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetUser() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_UpdateProfile(t *testing.T) {
	req := &model.UpdateProfileRequest{Name: "Minimarket Sol", Phone: "912345678", DeviceToken: "fcm-token"}
	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: req.Phone}).Return(&model.UserEntity{ID: 4}, nil).Once()
				f.userRepo.On("UpdateProfile", mock.Anything, uint64(4), req).Return(nil).Once()
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 4}).
					Return(&model.UserEntity{ID: 4, Name: req.Name, Phone: req.Phone}, nil).
					Once()
			},
		},
		{
			name: "error: phone belongs to another merchant",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: req.Phone}).Return(&model.UserEntity{ID: 9}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: user vanished",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: req.Phone}).Return(nil, nil).Once()
				f.userRepo.On("UpdateProfile", mock.Anything, uint64(4), req).Return(sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: update fails",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: req.Phone}).Return(nil, nil).Once()
				f.userRepo.On("UpdateProfile", mock.Anything, uint64(4), req).Return(errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().UpdateProfile(context.Background(), 4, req)
			if checkErr(t, err, tt.wantErr, tt.errCode) {
				return
			}
			if got.Name != req.Name || got.Phone != req.Phone {
				t.Fatalf("UpdateProfile() = %+v", got)
			}
		})
	}
}

func TestUserApp_ChangePassword(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.ChangePasswordRequest
		mockCall func(t *testing.T, f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			req:  &model.ChangePasswordRequest{CurrentPassword: "snacks123", NewPassword: "papitas456"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 4}).Return(&model.UserEntity{ID: 4, PasswordHash: hash(t, "snacks123")}, nil).Once()
				f.userRepo.
					On("UpdatePassword", mock.Anything, uint64(4), mock.MatchedBy(func(h string) bool {
						return bcrypt.CompareHashAndPassword([]byte(h), []byte("papitas456")) == nil
					})).
					Return(nil).
					Once()
			},
		},
		{
			name: "error: current password mismatch",
			req:  &model.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "papitas456"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 4}).Return(&model.UserEntity{ID: 4, PasswordHash: hash(t, "snacks123")}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: user not found",
			req:  &model.ChangePasswordRequest{CurrentPassword: "snacks123", NewPassword: "papitas456"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 4}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: update fails",
			req:  &model.ChangePasswordRequest{CurrentPassword: "snacks123", NewPassword: "papitas456"},
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 4}).Return(&model.UserEntity{ID: 4, PasswordHash: hash(t, "snacks123")}, nil).Once()
				f.userRepo.On("UpdatePassword", mock.Anything, uint64(4), mock.Anything).Return(errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(t, f)

			err := f.app().ChangePassword(context.Background(), 4, tt.req)
			checkErr(t, err, tt.wantErr, tt.errCode)
		})
	}
}
