package dto

import (
	"hotel/internal/domains/user/model"
	"hotel/shared/constant"
)

// CreateUserRequest carries the answers to the create-user prompts.
type CreateUserRequest struct {
	Name     string `validate:"notblank,max=50"`
	Password string `validate:"required,max=72"`
}

func (r *CreateUserRequest) ToModel(hashedPassword string) model.User {
	return model.User{
		Name:     r.Name,
		Password: hashedPassword,
		UserType: constant.UserTypeCustomer,
	}
}
