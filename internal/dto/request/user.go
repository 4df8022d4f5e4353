package request

// UpdateUserRoleRequest changes a user's role
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}

// BanUserRequest sets a user's banned flag
type BanUserRequest struct {
	Banned bool `json:"banned"`
}
