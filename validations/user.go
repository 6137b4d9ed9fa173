package validations

// CreateUserRequest kayıt isteği gövdesi.
type CreateUserRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

var createUserMessages = map[string]string{
	"FullName.required": "Full name is required",
	"Email.required":    "Invalid email address",
	"Email.email":       "Invalid email address",
	"Password.required": "Password is required",
	"Password.min":      "Password must be at least 8 characters",
}

func (r CreateUserRequest) Validate() error {
	return firstViolation(validate.Struct(r), createUserMessages)
}

// UpdateUserRequest kısmi kullanıcı güncelleme gövdesi.
type UpdateUserRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" validate:"omitempty,email"`
	Username string `json:"username"`
}

var updateUserMessages = map[string]string{
	"Email.email": "Invalid email address",
}

func (r UpdateUserRequest) Validate() error {
	return firstViolation(validate.Struct(r), updateUserMessages)
}

// LoginRequest giriş isteği gövdesi.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

var loginMessages = map[string]string{
	"Email.required":    "Invalid email address",
	"Email.email":       "Invalid email address",
	"Password.required": "Password is required",
}

func (r LoginRequest) Validate() error {
	return firstViolation(validate.Struct(r), loginMessages)
}
