package model

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "userid"
	FieldName     = "name"
	FieldPassword = "password"
	FieldUserType = "usertype"
)

type User struct {
	ID       int64  `db:"userid"   generated:"true"`
	Name     string `db:"name"`
	Password string `db:"password"`
	UserType string `db:"usertype"`
}
