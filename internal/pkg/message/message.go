package message

const (
	InvalidInput       = "Invalid input."
	InvalidCredentials = "Invalid username/password."
	NotActivated       = "Account is not activated."
	AlreadyRegistered  = "This email has already been used for registration."
	AlreadyActivated   = "This account has already been activated."
	CodeInvalid        = "This verification code is invalid or has expired."
	Registered         = "User registered. Please check your email to activate it."
	Activated          = "User activated successfully. Please check your email for confirmation."
	ServerError        = "Something went wrong."
	EnvErrFmt          = "environment variable is not set: %s"

	FmtErrStatusCode = "rec.Code = %d, want: %d"
)
