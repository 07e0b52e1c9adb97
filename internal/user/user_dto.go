package user

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=DEVELOPER ADMIN ACCOUNTS CONTRACTOR MEMBER"`
}

type UpdateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=DEVELOPER ADMIN ACCOUNTS CONTRACTOR MEMBER"`
	IsActive *bool  `json:"is_active" binding:"required"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}
