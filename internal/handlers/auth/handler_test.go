package auth_test

import (
	"bytes"
	"context"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/auth/model/dto"
	authMocks "hotel/internal/domains/auth/service/mocks"
	"hotel/internal/handlers/auth"
	"hotel/shared/failure"
	"hotel/transport/console/session"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_LogIn(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		setupMock  func(svc *authMocks.MockAuth)
		wantUserID int64
		wantOutput string
	}{
		{
			name:  "success binds session",
			input: "3\npw\n",
			setupMock: func(svc *authMocks.MockAuth) {
				svc.EXPECT().Login(gomock.Any(), dto.LoginRequest{UserID: "3", Password: "pw"}).Return(int64(3), nil)
			},
			wantUserID: 3,
		},
		{
			name:  "wrong password",
			input: "3\nnope\n",
			setupMock: func(svc *authMocks.MockAuth) {
				svc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(int64(0), failure.Unauthorized("invalid user id or password"))
			},
			wantOutput: "invalid user id or password",
		},
		{
			name:       "empty password never reaches the service",
			input:      "3\n\n",
			setupMock:  func(_ *authMocks.MockAuth) {},
			wantOutput: "Password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := authMocks.NewMockAuth(ctrl)
			tt.setupMock(svc)

			handler := auth.New(svc, mocks.NewOtel())

			var out bytes.Buffer
			s := session.New(strings.NewReader(tt.input), &out)

			handler.LogIn(context.Background(), s)

			assert.Equal(t, tt.wantUserID, s.UserID())
			assert.Contains(t, out.String(), "\tEnter userID: ")
			assert.Contains(t, out.String(), tt.wantOutput)
		})
	}
}
