package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeBadRequest       ErrorCode = "BAD_REQUEST"

	// Resources
	CodeAdminNotFound     ErrorCode = "ADMIN_NOT_FOUND"
	CodeRecruiterNotFound ErrorCode = "RECRUITER_NOT_FOUND"
	CodeLeadNotFound      ErrorCode = "LEAD_NOT_FOUND"
	CodeClientNotFound    ErrorCode = "CLIENT_NOT_FOUND"
	CodeNotFound          ErrorCode = "NOT_FOUND"

	// Business logic
	CodeRecruiterExists  ErrorCode = "RECRUITER_ALREADY_EXISTS"
	CodeNoPendingLeads   ErrorCode = "NO_PENDING_LEADS"
	CodeInvalidCriteria  ErrorCode = "INVALID_SEARCH_CRITERIA"
	CodeEmptyUpload      ErrorCode = "EMPTY_UPLOAD"
	CodeUnsupportedFile  ErrorCode = "UNSUPPORTED_FILE_TYPE"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
