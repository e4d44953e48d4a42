package application

// Actor is the resolved identity behind a request: either a logged-in
// user or Anonymous. It is passed explicitly to every content
// operation; nothing reads ambient request state below the handlers.
type Actor struct {
	ID            int64
	Email         string
	Name          string
	Admin         bool
	Authenticated bool
}

// Anonymous is the actor of a request with no live session.
var Anonymous = Actor{}

// IsAdministrator reports whether the actor may mutate content. The
// admin flag is assigned at provisioning time (cmd/seed), not inferred
// from any identifier value.
func (a Actor) IsAdministrator() bool {
	return a.Authenticated && a.Admin
}
