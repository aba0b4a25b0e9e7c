/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"

	"github.com/suparena/grimoire/errors"
	"github.com/suparena/grimoire/token"
)

type probe struct {
	*token.Token
}

func newProbe(data token.Record) *probe {
	p := &probe{}
	p.Token = token.NewVariant(data, func(r token.Record) token.Entity { return newProbe(r) })
	return p
}

func init() {
	RegisterVariant("probe", func(r token.Record) token.Entity { return newProbe(r) })
	RegisterKind[*probe]("probe")
}

func TestVariantRegistry(t *testing.T) {
	t.Run("NewEntity", func(t *testing.T) {
		entity, err := NewEntity("probe", token.Record{"id": "x"})
		if err != nil {
			t.Fatalf("NewEntity failed: %v", err)
		}
		if _, ok := entity.(*probe); !ok {
			t.Fatalf("Expected *probe, got %T", entity)
		}
	})

	t.Run("UnknownKind", func(t *testing.T) {
		_, err := NewEntity("fabled", token.Record{})
		if !errors.IsNotFound(err) {
			t.Fatalf("Expected not found error, got: %v", err)
		}
	})

	t.Run("DuplicatePanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("Expected panic on duplicate registration")
			}
		}()
		RegisterVariant("probe", func(r token.Record) token.Entity { return newProbe(r) })
	})

	t.Run("Kinds", func(t *testing.T) {
		found := false
		for _, k := range Kinds() {
			if k == "probe" {
				found = true
			}
		}
		if !found {
			t.Fatal("Expected probe among registered kinds")
		}
	})
}

func TestKindRegistry(t *testing.T) {
	if kind, ok := KindOf[*probe](); !ok || kind != "probe" {
		t.Fatalf("KindOf: got %q, %v", kind, ok)
	}

	if kind, ok := KindOfValue(newProbe(token.Record{})); !ok || kind != "probe" {
		t.Fatalf("KindOfValue: got %q, %v", kind, ok)
	}

	if _, ok := KindOfValue(token.New(token.Record{})); ok {
		t.Fatal("Plain tokens have no registered kind")
	}
}
