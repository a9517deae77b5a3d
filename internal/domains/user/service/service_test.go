package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"hotel/infras/otel/mocks"
	userMocks "hotel/internal/domains/user/mocks"
	"hotel/internal/domains/user/model"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/domains/user/service"
	"hotel/shared/constant"
)

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.CreateUserRequest
		setupMock func()
		wantID    int64
		wantErr   bool
	}{
		{
			name: "stores a hashed customer",
			req:  dto.CreateUserRequest{Name: "Alice", Password: "pw"},
			setupMock: func() {
				mockRepo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user model.User) (int64, error) {
						assert.Equal(t, "Alice", user.Name)
						assert.Equal(t, constant.UserTypeCustomer, user.UserType)
						assert.NotEqual(t, "pw", user.Password)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pw")))

						return 42, nil
					})
			},
			wantID: 42,
		},
		{
			name:      "empty password is rejected before insert",
			req:       dto.CreateUserRequest{Name: "Alice"},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req:  dto.CreateUserRequest{Name: "Alice", Password: "pw"},
			setupMock: func() {
				mockRepo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			id, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}
