package holiday

import "time"

type Holiday struct {
	ID        string
	Name      string
	Date      time.Time
	Scope     Scope
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Scope string

const (
	ScopeNational  Scope = "national"
	ScopeState     Scope = "state"
	ScopeMunicipal Scope = "municipal"
)
