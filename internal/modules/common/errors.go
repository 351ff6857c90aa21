package common

import (
	"errors"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/draft"
	"github.com/bwmarrin/discordgo"
)

// ValidationError is a problem with user input. Its message is French and
// shown to the user as is.
type ValidationError struct {
	Message string
}

// Invalid creates a ValidationError.
func Invalid(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UserMessage implements bot.UserFacingError.
func (e *ValidationError) UserMessage() string {
	return e.Message
}

// ReplyError answers validation and draft errors with an ephemeral message
// and returns nil. Any other error is returned unchanged for the bot to report.
func ReplyError(r bot.Responder, err error) error {
	var msg string
	var validation *ValidationError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &validation):
		msg = validation.Message
	case errors.Is(err, draft.ErrNotFound):
		msg = MsgDraftExpired
	case errors.Is(err, draft.ErrForbidden):
		msg = MsgDraftForbidden
	case errors.Is(err, draft.ErrInvalidTransition):
		msg = MsgDraftInvalidStep
	default:
		return err
	}

	if r.Responded() {
		return r.Edit(&discordgo.WebhookEdit{Content: &msg})
	}
	return RespondEphemeral(r, msg)
}
