package outcome

// Category is the closed set of classified failures a request can end in.
// The zero value is Unknown.
type Category uint8

const (
	// Unknown marks a failure nothing classified, such as an upstream
	// answering 200 OK with a body that does not parse.
	Unknown Category = iota
	// Unauthenticated: no session token, or the token is not registered.
	Unauthenticated
	// InvalidCredentials: the upstream rejected a login as unauthorized.
	InvalidCredentials
	// UserNotFound: the upstream does not know the user being logged in.
	UserNotFound
	// UserAlreadyExists: the upstream reported a conflict on registration.
	UserAlreadyExists
	// ResponseBuildFailure: the success response could not be assembled.
	ResponseBuildFailure
	// BadRequest: the inbound body did not decode or the method is not allowed.
	BadRequest
	// InternalFailure: session store contention, upstream transport errors
	// and unexpected upstream statuses.
	InternalFailure
	// NotFound: the requested route or resource does not exist.
	NotFound
)

var categoryNames = [...]string{
	Unknown:              "unknown",
	Unauthenticated:      "unauthenticated",
	InvalidCredentials:   "invalid_credentials",
	UserNotFound:         "user_not_found",
	UserAlreadyExists:    "user_already_exists",
	ResponseBuildFailure: "response_build_failure",
	BadRequest:           "bad_request",
	InternalFailure:      "internal_failure",
	NotFound:             "not_found",
}

// String returns the snake_case name of the category.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return categoryNames[Unknown]
}

// Categories lists every named category, Unknown included.
func Categories() []Category {
	return []Category{
		Unknown,
		Unauthenticated,
		InvalidCredentials,
		UserNotFound,
		UserAlreadyExists,
		ResponseBuildFailure,
		BadRequest,
		InternalFailure,
		NotFound,
	}
}
