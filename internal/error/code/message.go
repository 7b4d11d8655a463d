package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Generic codes
	ErrSuccess:         "success",
	ErrUnknown:         "something went wrong",
	ErrBind:            "invalid request body",
	ErrValidation:      "invalid request parameters",
	ErrTokenInvalid:    "invalid authentication token",
	ErrTooManyRequests: "too many requests",

	// User and auth codes
	ErrUserNotFound:       "User not found",
	ErrUserAlreadyExists:  "User already exists",
	ErrInvalidCredentials: "Invalid credentials",
	ErrRoleForbidden:      "Not authorized to perform this action",

	// Area codes
	ErrAreaNotFound:      "Area not found",
	ErrAreaAlreadyExists: "Area already exists",
	ErrAreaInUse:         "Area still has houses assigned to it",

	// House codes
	ErrHouseNotFound: "House not found",
	ErrNotHouseOwner: "Not authorized to modify this house",

	// Person codes
	ErrPersonNotFound: "Person not found",
	ErrNotPersonOwner: "Not authorized to modify this person",

	// Team codes
	ErrTeamNotFound:   "Team not found",
	ErrMemberRequired: "Please provide a user ID",

	// Storage codes
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record not found",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Generic codes
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// User and auth codes
	ErrUserNotFound:       StatusNotFound,
	ErrUserAlreadyExists:  StatusBadRequest,
	ErrInvalidCredentials: StatusUnauthorized,
	ErrRoleForbidden:      StatusForbidden,

	// Area codes
	ErrAreaNotFound:      StatusNotFound,
	ErrAreaAlreadyExists: StatusBadRequest,
	ErrAreaInUse:         StatusBadRequest,

	// House codes
	ErrHouseNotFound: StatusNotFound,
	// Ownership refusals answer 401, matching the behaviour clients
	// of the original API depend on.
	ErrNotHouseOwner: StatusUnauthorized,

	// Person codes
	ErrPersonNotFound: StatusNotFound,
	ErrNotPersonOwner: StatusUnauthorized,

	// Team codes
	ErrTeamNotFound:   StatusNotFound,
	ErrMemberRequired: StatusBadRequest,

	// Storage codes
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "something went wrong"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
