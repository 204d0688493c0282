// Package backend is the HTTP client for the content analysis API.
//
//	client, err := backend.New(backend.Config{BaseURL: "http://localhost:8000/api/v0"})
//
//	user, err := client.Login(ctx, backend.Credentials{Email: email, Password: password})
//	if err != nil {
//		// outcome.CategoryOf(err) is InvalidCredentials, UserNotFound, ...
//	}
//
// Every failed call returns an *outcome.Error produced by outcome.Classify,
// so callers never inspect status codes. A 200 OK whose body does not decode
// is an Unknown failure.
package backend
