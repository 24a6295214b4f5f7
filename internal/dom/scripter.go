// File: internal/dom/scripter.go
package dom

import "context"

// Scripter evaluates a JavaScript function expression in the target page and
// decodes its JSON-string result into out. It is the single seam between the
// tour engine and the live DOM; production code uses the browser session,
// tests substitute an in-memory fake.
type Scripter interface {
	Eval(ctx context.Context, fn string, out any, args ...any) error
}
