package utils

// Application constants
const (
	// Application name
	AppName = "WorldHistorySim"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// Default database host
	DefaultDBHost = "localhost"

	// Default database port
	DefaultDBPort = "5432"

	// Default database name
	DefaultDBName = "worldhistorysim"

	// Default database user
	DefaultDBUser = "postgres"

	// JWT token expiration (24 hours)
	JWTExpiration = "24h"

	// OTP expiration (1 minute; expired codes are resent, not rejected)
	OTPExpiration = "1m"

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Minimum password length
	MinPasswordLength = 8

	// Maximum password length
	MaxPasswordLength = 32

	// Minimum name length
	MinNameLength = 2

	// Maximum name length
	MaxNameLength = 100

	// Maximum description length
	MaxDescriptionLength = 2000

	// Editor session lifetime (30 minutes idle)
	EditorSessionTTL = "30m"
)

// Error messages
const (
	// Authentication errors
	ErrInvalidCredentials = "Invalid email or password"
	ErrUserBlocked        = "Your account has been blocked"
	ErrInvalidToken       = "Invalid or expired token"
	ErrUnauthorized       = "Unauthorized access"
	ErrForbidden          = "Access forbidden"

	// Validation errors
	ErrInvalidEmail      = "Invalid email format"
	ErrInvalidPassword   = "Password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one number, and one special character"
	ErrInvalidPagination = "Invalid pagination parameters"

	// Domain errors
	ErrWorldNotFound    = "World not found"
	ErrCategoryNotFound = "Category not found"
	ErrNoOpenDraft      = "No category draft is open"
	ErrCategoryCycle    = "Category parent chain loops back on itself"

	// Database errors
	ErrRecordNotFound = "Record not found"
	ErrDuplicateEntry = "Duplicate entry"
	ErrDBConnection   = "Database connection error"

	// Server errors
	ErrInternalServer     = "Internal server error"
	ErrServiceUnavailable = "Service unavailable"
)

// Success messages
const (
	// Authentication messages
	MsgLoginSuccess    = "Login successful"
	MsgLogoutSuccess   = "Logout successful"
	MsgRegisterSuccess = "Registration successful"
	MsgOTPSent         = "OTP sent successfully"
	MsgOTPVerified     = "OTP verified successfully"

	// CRUD operation messages
	MsgCreateSuccess = "Created successfully"
	MsgUpdateSuccess = "Updated successfully"
	MsgDeleteSuccess = "Deleted successfully"
)
