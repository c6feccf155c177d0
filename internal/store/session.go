package store

import "sixcities/internal/model"

// SessionState tracks the tri-state authorization and current profile.
// Status starts Unknown and stays there until CheckAuth resolves it;
// consumers must treat Unknown as pending, not as a denial.
type SessionState struct {
	Status model.AuthorizationStatus
	User   *model.User
}

func initialSession() SessionState {
	return SessionState{Status: model.AuthUnknown}
}

func reduceSession(prev SessionState, action Action) SessionState {
	switch a := action.(type) {
	case SetAuthorizationStatus:
		prev.Status = a.Status
		return prev
	case SetUser:
		prev.User = a.User
		return prev
	default:
		return prev
	}
}
