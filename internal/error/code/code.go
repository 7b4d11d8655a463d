package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: malformed request.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: missing or invalid credentials.
	StatusUnauthorized = 401
	// StatusForbidden - 403: authenticated but not permitted.
	StatusForbidden = 403
	// StatusNotFound - 404: resource absent.
	StatusNotFound = 404
	// StatusTooManyRequests - 429: rate limited.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: unexpected failure.
	StatusInternalServerError = 500
)

// Generic error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body binding error.
	ErrBind
	// ErrValidation - 400: request parameter validation error.
	ErrValidation
	// ErrTokenInvalid - 401: invalid authentication token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// User and auth error codes (101xxx).
const (
	// ErrUserNotFound - 404: user does not exist.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExists - 400: user already registered.
	ErrUserAlreadyExists
	// ErrInvalidCredentials - 401: email or password incorrect.
	ErrInvalidCredentials
	// ErrRoleForbidden - 403: caller role is not allowed here.
	ErrRoleForbidden
)

// Area error codes (102xxx).
const (
	// ErrAreaNotFound - 404: area does not exist.
	ErrAreaNotFound int = iota + 102000
	// ErrAreaAlreadyExists - 400: area name already taken.
	ErrAreaAlreadyExists
	// ErrAreaInUse - 400: area still referenced by houses.
	ErrAreaInUse
)

// House error codes (103xxx).
const (
	// ErrHouseNotFound - 404: house does not exist.
	ErrHouseNotFound int = iota + 103000
	// ErrNotHouseOwner - 401: caller is neither submitter nor admin.
	ErrNotHouseOwner
)

// Person error codes (104xxx).
const (
	// ErrPersonNotFound - 404: person does not exist.
	ErrPersonNotFound int = iota + 104000
	// ErrNotPersonOwner - 401: caller is neither submitter nor admin.
	ErrNotPersonOwner
)

// Team error codes (105xxx).
const (
	// ErrTeamNotFound - 404: team does not exist.
	ErrTeamNotFound int = iota + 105000
	// ErrMemberRequired - 400: membership call without a user ID.
	ErrMemberRequired
)

// Storage error codes (106xxx).
const (
	// ErrDatabase - 500: storage operation failed.
	ErrDatabase int = iota + 106000
	// ErrRecordNotFound - 404: record does not exist.
	ErrRecordNotFound
)
