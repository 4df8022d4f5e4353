package request

// AddToCartRequest adds one course to the caller's cart
type AddToCartRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}

// RemoveFromCartRequest removes one course from the caller's cart
type RemoveFromCartRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}
