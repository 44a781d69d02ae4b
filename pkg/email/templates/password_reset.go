package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// PasswordResetSubject is the subject line of the reset email.
const PasswordResetSubject = "PetPal Password Reset"

// PasswordResetHTML renders the HTML body containing the reset link.
func PasswordResetHTML(resetURL string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		escaped := templ.EscapeString(resetURL)
		_, err := io.WriteString(w,
			`<p>Click to reset your password: <a href="`+escaped+`">`+escaped+`</a></p>`)
		return err
	})
}

// PasswordResetText returns the plain-text body.
func PasswordResetText(resetURL string) string {
	return "Reset your password: " + resetURL
}
