package dto

import (
	"time"

	"github.com/SscSPs/object_dto/pkg/objectdto"
)

// CreateUserRequest is the {"data": ...} body accepted by user creation and
// registration. Every field is required.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest defines the data allowed for updating a user.
type UpdateUserRequest struct {
	Name string `json:"name"` // Only name is updatable for now
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserResponseShape lists the keys projected into user responses.
var UserResponseShape = objectdto.ShapeOf[UserResponse]()

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []objectdto.Record `json:"users"`
}
