package request

// UpdateProfileRequest changes only the fields that are sent.
type UpdateProfileRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50,alphanum"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

type DeleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}
