package models

// Role discriminates the kind of account a session is logged in as
type Role string

const (
	RoleParent Role = "parent"
	RoleChild  Role = "child"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleParent || r == RoleChild
}

// Parent represents a parent account and the children it owns
type Parent struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Password string   `json:"-"`
	Email    string   `json:"email"`
	Children []*Child `json:"children"`
}

// Clone returns a deep copy of the parent including its children
func (p *Parent) Clone() *Parent {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Children = make([]*Child, len(p.Children))
	for i, child := range p.Children {
		clone.Children[i] = child.Clone()
	}
	return &clone
}

// FindChild returns the child with the given ID, or nil
func (p *Parent) FindChild(childID string) *Child {
	for _, child := range p.Children {
		if child.ID == childID {
			return child
		}
	}
	return nil
}

// Identity is the tagged reference a session keeps to its logged-in account.
// The zero value means nobody is logged in.
type Identity struct {
	Role Role
	ID   string
}

// LoggedIn reports whether the identity refers to an account
func (i Identity) LoggedIn() bool {
	return i.Role.Valid() && i.ID != ""
}

// CurrentUser is the resolved account behind an Identity.
// Exactly one of Parent or Child is set, matching Role.
type CurrentUser struct {
	Role   Role    `json:"role"`
	Parent *Parent `json:"parent,omitempty"`
	Child  *Child  `json:"child,omitempty"`
}
