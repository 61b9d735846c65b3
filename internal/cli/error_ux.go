package cli

import (
	"errors"
	"fmt"

	"github.com/IAG-Ent/build-your-own-radar/internal/domain"
)

// presentError turns a pipeline error into the message the user sees. The
// typed errors carry fixed copy that is shown verbatim; only the
// unauthorized state gets an extra recovery affordance.
func presentError(err error) error {
	if err == nil {
		return nil
	}
	return errors.New(userMessage(err))
}

func userMessage(err error) string {
	if errors.Is(err, domain.ErrNoSource) {
		return "That reference is not a CSV, JSON, or spreadsheet source. Provide a URL ending in .csv or .json, or a link to a published spreadsheet."
	}

	var malformed *domain.MalformedDataError
	if errors.As(err, &malformed) {
		return malformed.Error()
	}

	var notFound *domain.SheetNotFoundError
	if errors.As(err, &notFound) {
		return notFound.Error()
	}

	var unauthorized *domain.UnauthorizedError
	if errors.As(err, &unauthorized) {
		msg := unauthorized.Error()
		if unauthorized.Identity != "" {
			msg += fmt.Sprintf(" You are signed in as %s.", unauthorized.Identity)
		}
		return msg + " Run again with --force-reauth to retry with a different account."
	}

	if domain.IsKind(err, domain.KindUnauthorized) {
		return "Authentication failed. Run again with --force-reauth to retry with a different account."
	}

	return "Unexpected error fetching your data. Check the URL and try again (run with --debug for details)."
}
