package dto

type RegisterDTO struct {
	Email    string `json:"email"    validate:"required,email,min=6,max=100"`
	Username string `json:"username" validate:"required,min=6,max=100"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type VerifyEmailDTO struct {
	Email string `json:"email"                  validate:"required,email,min=6,max=100"`
	Token string `json:"emailVerificationToken" validate:"required,min=6,max=100"`
}

type LoginDTO struct {
	Email    string `json:"email"    validate:"required,email,min=6,max=100"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refreshToken" validate:"required,min=6,max=512"`
}

type ForgotPasswordDTO struct {
	Email string `json:"email" validate:"required,email,min=6,max=100"`
}

type ResetPasswordDTO struct {
	Email             string `json:"email"             validate:"required,email,min=6,max=100"`
	NewPassword       string `json:"newPassword"       validate:"required,min=6,max=100"`
	RepeatNewPassword string `json:"repeatNewPassword" validate:"required,eqfield=NewPassword"`
	ResetToken        string `json:"resetPasswordToken" validate:"required,min=6,max=100"`
}

type UpdateCurrentUserDTO struct {
	Username string `json:"username" validate:"omitempty,min=6,max=100"`
	Password string `json:"password" validate:"omitempty,min=6,max=100"`
}

type CreateContactDTO struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string `json:"lastName"  validate:"omitempty,max=100"`
	Email     string `json:"email"     validate:"omitempty,email,max=100"`
	Phone     string `json:"phone"     validate:"omitempty,max=20"`
}

type UpdateContactDTO struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string `json:"lastName"  validate:"omitempty,max=100"`
	Email     string `json:"email"     validate:"omitempty,email,max=100"`
	Phone     string `json:"phone"     validate:"omitempty,max=20"`
}

type AddressDTO struct {
	Street     string `json:"street"     validate:"omitempty,max=255"`
	City       string `json:"city"       validate:"omitempty,max=100"`
	Province   string `json:"province"   validate:"omitempty,max=100"`
	Country    string `json:"country"    validate:"required,min=1,max=100"`
	PostalCode string `json:"postalCode" validate:"omitempty,max=10"`
}
