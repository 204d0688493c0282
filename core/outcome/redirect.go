package outcome

// Redirect targets for classified failures.
const (
	PathAuth              = "/auth"
	PathNotFound          = "/error/not-found"
	PathEmailTaken        = "/error/email-taken"
	PathIncorrectPassword = "/error/incorrect-password"
	PathServerError       = "/error/server-error"
	PathBadRequest        = "/error/bad-request"
)

// RedirectPath returns the page a client is sent to for a failure category.
// Every value, named or not, maps to exactly one path.
func RedirectPath(c Category) string {
	switch c {
	case NotFound, UserNotFound:
		return PathNotFound
	case Unauthenticated:
		return PathAuth
	case UserAlreadyExists:
		return PathEmailTaken
	case InvalidCredentials:
		return PathIncorrectPassword
	case BadRequest:
		return PathBadRequest
	case InternalFailure, ResponseBuildFailure:
		return PathServerError
	default:
		return PathServerError
	}
}

// RedirectPathFor resolves the target for any error; errors without a
// category fall back to the server error page.
func RedirectPathFor(err error) string {
	return RedirectPath(CategoryOf(err))
}
