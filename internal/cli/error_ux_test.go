package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IAG-Ent/build-your-own-radar/internal/domain"
)

func TestUserMessageShowsMalformedCopyVerbatim(t *testing.T) {
	err := &domain.MalformedDataError{Reason: domain.LessThanFourQuadrants}
	require.Equal(t, err.Error(), userMessage(fmt.Errorf("ingest: %w", err)))
}

func TestUserMessageNotFound(t *testing.T) {
	msg := userMessage(&domain.SheetNotFoundError{SheetID: "doc-1"})
	require.Contains(t, msg, "can't find the document")
}

func TestUserMessageUnauthorizedOffersReauth(t *testing.T) {
	msg := userMessage(&domain.UnauthorizedError{Identity: "dev@example.com"})
	require.Contains(t, msg, "not authorized")
	require.Contains(t, msg, "dev@example.com")
	require.Contains(t, msg, "--force-reauth")
}

func TestUserMessageLoginFailure(t *testing.T) {
	err := &domain.OpError{Op: "oauthtoken.login", Kind: domain.KindUnauthorized, Err: errors.New("invalid_grant")}
	require.Contains(t, userMessage(err), "--force-reauth")
}

func TestUserMessageNoSource(t *testing.T) {
	msg := userMessage(domain.ErrNoSource)
	require.Contains(t, msg, "not a CSV, JSON, or spreadsheet source")
}

func TestUserMessageFallback(t *testing.T) {
	msg := userMessage(errors.New("dial tcp: connection refused"))
	require.Contains(t, msg, "try again")
}

func TestPresentErrorNil(t *testing.T) {
	require.NoError(t, presentError(nil))
}
