package dto

// CreateUserRequest defines the payload for creating a user.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,notblank"`
	Username string `json:"username" binding:"required,notblank"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}
