package service

import "github.com/classifieds-board/backend/internal/model"

// AssertOwner allows a mutation only when user owns the resource.
func AssertOwner(resourceOwnerID int64, user *model.User) error {
	if user == nil || user.ID != resourceOwnerID {
		return ErrForbidden
	}
	return nil
}
