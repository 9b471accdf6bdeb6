// Package errors contains domain-specific errors for the news domain
package errors

import (
	pkgerrors "github.com/ideafy1/newsbot/pkg/errors"
)

// Domain errors for news fetching
var (
	ErrNoNews            = pkgerrors.NewNotFoundError("no news item found on page")
	ErrIncompleteNews    = pkgerrors.NewNotFoundError("news item is missing required fields")
	ErrEmptyPage         = pkgerrors.NewNotFoundError("news page is empty")
	ErrSourceUnavailable = pkgerrors.NewUnavailableError("news source unavailable")
	ErrUnknownSource     = pkgerrors.NewValidationError("unknown news source")
	ErrUnknownPick       = pkgerrors.NewValidationError("unknown pick mode")
)
