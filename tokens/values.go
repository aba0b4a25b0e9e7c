/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tokens

import (
	"fmt"

	"github.com/suparena/grimoire/errors"
	"github.com/suparena/grimoire/token"
)

func stringValue(e token.Entity, accessor string) (string, error) {
	v, err := e.Call(accessor)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.NewValidationError(token.ConvertProperty(accessor), fmt.Sprintf("expected a string, got %T", v))
	}
	return s, nil
}

// boolValue treats an absent key as false.
func boolValue(e token.Entity, accessor string) (bool, error) {
	v, err := e.Call(accessor)
	if errors.IsMissingKey(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, errors.NewValidationError(token.ConvertProperty(accessor), fmt.Sprintf("expected a boolean, got %T", v))
	}
	return b, nil
}

// stringsValue treats an absent key as an empty list.
func stringsValue(e token.Entity, accessor string) ([]string, error) {
	v, err := e.Call(accessor)
	if errors.IsMissingKey(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, errors.NewValidationError(token.ConvertProperty(accessor), fmt.Sprintf("item %d: expected a string, got %T", i, item))
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, errors.NewValidationError(token.ConvertProperty(accessor), fmt.Sprintf("expected a list, got %T", v))
	}
}
