package service

import (
	"testing"

	"github.com/classifieds-board/backend/internal/model"
)

func TestAssertOwner(t *testing.T) {
	if err := AssertOwner(5, &model.User{ID: 5}); err != nil {
		t.Fatalf("owner should be allowed, got %v", err)
	}
	if err := AssertOwner(5, &model.User{ID: 6}); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := AssertOwner(5, nil); err != ErrForbidden {
		t.Fatalf("expected ErrForbidden for nil user, got %v", err)
	}
}
