// Package outcome classifies everything that can go wrong while serving a
// request into a small closed set of categories, and maps each category to
// the page the client is redirected to.
//
// Upstream results go through Classify:
//
//	if failure := outcome.Classify(outcome.Result{Op: outcome.Login, Status: resp.StatusCode}); failure != nil {
//		return failure
//	}
//
// The router's error handler then resolves any error with RedirectPathFor,
// which is total: errors that carry no category land on the server error page.
package outcome
