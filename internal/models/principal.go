package models

// Principal is the authenticated caller as read from a verified token.
type Principal struct {
	ID         string
	IsAdmin    bool
	IsBusiness bool
}
