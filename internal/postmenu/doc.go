// Package postmenu computes the per-post action menu and dispatches the
// selected entry.
//
// Every call to Build starts from a freshly constructed catalog closed over
// the post id and the current page location, then filters it against the
// viewer relationship. Nothing is cached between calls, so the result is a
// pure function of its inputs.
//
// Each entry carries exactly one Action: Navigate, Invoke or Custom. An entry
// cannot both run an effect and render its own navigation.
package postmenu
