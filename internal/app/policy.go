package app

// CheckAccess decides whether requesterID may read, update or delete url.
// url is nil when the record does not exist.
//
// Checks go in a fixed order: authentication, existence, ownership.
func CheckAccess(requesterID string, url *URL) error {
	if requesterID == "" {
		return ErrNotAuthenticated
	}
	if url == nil {
		return ErrURLNotFound
	}
	if url.UserID != requesterID {
		return ErrUnauthorized
	}
	return nil
}
