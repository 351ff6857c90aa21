package bot

import "errors"

// GenericErrorMessage is shown when a handler fails without a user-facing message.
const GenericErrorMessage = "Une erreur est survenue. Veuillez réessayer plus tard."

// UserFacingError is implemented by errors whose message can be shown to Discord users as is.
type UserFacingError interface {
	error
	UserMessage() string
}

// UserMessage returns the message to display for err and whether it came from a UserFacingError.
func UserMessage(err error) (string, bool) {
	var ufe UserFacingError
	if errors.As(err, &ufe) {
		if msg := ufe.UserMessage(); msg != "" {
			return msg, true
		}
	}
	return GenericErrorMessage, false
}
