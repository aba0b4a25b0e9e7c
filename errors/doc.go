/*
Package errors provides semantic error types for the grimoire module.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound      = errors.New("not found")
	    ErrAlreadyExists = errors.New("already exists")
	    ErrInvalidInput  = errors.New("invalid input")
	    ErrMissingKey    = errors.New("missing record key")
	    ErrNotCallable   = errors.New("member is not callable")
	)

Usage:

	// Check error type
	ability, err := tok.Call("getAbility")
	if err != nil {
	    if errors.IsMissingKey(err) {
	        // The record has no "ability" key
	        return "", nil
	    }
	    return "", err
	}

	// Create typed errors
	err := errors.NewMissingKeyError("ability")
	err := errors.NewNotFoundError("Character", "washerwoman")
	err := errors.NewValidationError("players", "must be at least 5")

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
