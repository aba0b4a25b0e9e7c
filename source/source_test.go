/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package source_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/suparena/grimoire/errors"
	"github.com/suparena/grimoire/source"
	"github.com/suparena/grimoire/source/mock"
)

func TestFSSource(t *testing.T) {
	ctx := context.Background()
	src := source.NewFS(fstest.MapFS{
		"game.json": &fstest.MapFile{Data: []byte(`[{"townsfolk":3}]`)},
	})

	t.Run("Fetch", func(t *testing.T) {
		data, err := src.Fetch(ctx, "game.json")
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if string(data) != `[{"townsfolk":3}]` {
			t.Fatalf("Unexpected data: %s", data)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := src.Fetch(ctx, "characters.json")
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got: %v", err)
		}
	})

	t.Run("Cancelled", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := src.Fetch(cancelled, "game.json"); err == nil {
			t.Fatal("Expected error for cancelled context")
		}
	})
}

func TestMockSource(t *testing.T) {
	ctx := context.Background()

	t.Run("BasicOperations", func(t *testing.T) {
		src := mock.New().WithFile("game.json", []byte(`[]`))

		if _, err := src.Fetch(ctx, "game.json"); err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if _, err := src.Fetch(ctx, "other.json"); !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got: %v", err)
		}
		if n := src.Fetches("game.json"); n != 1 {
			t.Fatalf("Expected 1 fetch, got %d", n)
		}
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		fetchErr := errors.NewValidationError("", "offline")
		src := mock.New().WithFile("game.json", []byte(`[]`)).WithFetchError(fetchErr)

		if _, err := src.Fetch(ctx, "game.json"); err != fetchErr {
			t.Fatalf("Expected fetch error, got: %v", err)
		}
	})
}
