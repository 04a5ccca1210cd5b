package repository

import (
	"errors"
	"strings"
	"sync"

	"quizowl/internal/models"
)

var ErrParentUsernameTaken = errors.New("parent username already exists")

// IdentityStore holds parent accounts and the children they own.
// It is in-memory only; every value it hands out is a copy, and every
// mutation replaces the stored record as a whole under the write lock.
type IdentityStore struct {
	mu      sync.RWMutex
	parents []*models.Parent
}

// NewIdentityStore creates a store holding copies of the given parents
func NewIdentityStore(parents []*models.Parent) *IdentityStore {
	s := &IdentityStore{parents: make([]*models.Parent, 0, len(parents))}
	for _, p := range parents {
		s.parents = append(s.parents, p.Clone())
	}
	return s
}

// Parents returns the full parent roster
func (s *IdentityStore) Parents() []*models.Parent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Parent, len(s.parents))
	for i, p := range s.parents {
		out[i] = p.Clone()
	}
	return out
}

// Children returns the flat child roster across all parents, in roster order
func (s *IdentityStore) Children() []*models.Child {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Child
	for _, p := range s.parents {
		for _, c := range p.Children {
			out = append(out, c.Clone())
		}
	}
	return out
}

// GetParent retrieves a parent by ID, or nil if there is none
func (s *IdentityStore) GetParent(parentID string) *models.Parent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.parentIndex(parentID); i >= 0 {
		return s.parents[i].Clone()
	}
	return nil
}

// FindParentByCredentials returns the first parent whose username and password
// match exactly, or nil
func (s *IdentityStore) FindParentByCredentials(username, password string) *models.Parent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.parents {
		if p.Username == username && p.Password == password {
			return p.Clone()
		}
	}
	return nil
}

// ParentUsernameExists checks whether any parent uses the username
func (s *IdentityStore) ParentUsernameExists(username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parentUsernameExists(username)
}

// FindParentByEmail returns the first parent with the e-mail address,
// compared case-insensitively, or nil
func (s *IdentityStore) FindParentByEmail(email string) *models.Parent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.parents {
		if p.Email != "" && strings.EqualFold(p.Email, email) {
			return p.Clone()
		}
	}
	return nil
}

// AddParent appends a new parent to the roster. The username check and the
// insert happen under one lock so concurrent signups cannot both succeed.
func (s *IdentityStore) AddParent(parent *models.Parent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.parentUsernameExists(parent.Username) {
		return ErrParentUsernameTaken
	}
	s.parents = append(s.parents, parent.Clone())
	return nil
}

// UpdateParent applies fn to a copy of the parent and stores the result.
// It returns the updated parent, or nil if the parent does not exist.
func (s *IdentityStore) UpdateParent(parentID string, fn func(*models.Parent)) *models.Parent {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.parentIndex(parentID)
	if i < 0 {
		return nil
	}
	updated := s.parents[i].Clone()
	fn(updated)
	s.parents[i] = updated
	return updated.Clone()
}

// ChildUsernameExists checks whether any child uses the username
func (s *IdentityStore) ChildUsernameExists(username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.parents {
		for _, c := range p.Children {
			if c.Username == username {
				return true
			}
		}
	}
	return false
}

// GetChild retrieves a child by ID along with the ID of its owner
func (s *IdentityStore) GetChild(childID string) (*models.Child, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pi, ci := s.childIndex(childID)
	if pi < 0 {
		return nil, ""
	}
	return s.parents[pi].Children[ci].Clone(), s.parents[pi].ID
}

// FindChildByCredentials searches the flat child roster for an exact
// username and password match
func (s *IdentityStore) FindChildByCredentials(username, password string) *models.Child {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.parents {
		for _, c := range p.Children {
			if c.Username == username && c.Password == password {
				return c.Clone()
			}
		}
	}
	return nil
}

// AddChild appends a child to a parent's roster. It reports false if the
// parent does not exist.
func (s *IdentityStore) AddChild(parentID string, child *models.Child) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.parentIndex(parentID)
	if i < 0 {
		return false
	}
	updated := s.parents[i].Clone()
	updated.Children = append(updated.Children, child.Clone())
	s.parents[i] = updated
	return true
}

// UpdateChild applies fn to a copy of the child and stores the result.
// It returns the updated child, or nil if no child has that ID.
func (s *IdentityStore) UpdateChild(childID string, fn func(*models.Child)) *models.Child {
	s.mu.Lock()
	defer s.mu.Unlock()

	pi, ci := s.childIndex(childID)
	if pi < 0 {
		return nil
	}
	return s.replaceChild(pi, ci, fn)
}

// UpdateParentChild is UpdateChild restricted to the children of one parent
func (s *IdentityStore) UpdateParentChild(parentID, childID string, fn func(*models.Child)) *models.Child {
	s.mu.Lock()
	defer s.mu.Unlock()

	pi, ci := s.childIndex(childID)
	if pi < 0 || s.parents[pi].ID != parentID {
		return nil
	}
	return s.replaceChild(pi, ci, fn)
}

// DeleteChild removes a child, and with it its history, from a parent's
// roster. It reports whether a child was removed.
func (s *IdentityStore) DeleteChild(parentID, childID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pi := s.parentIndex(parentID)
	if pi < 0 {
		return false
	}
	parent := s.parents[pi]
	kept := make([]*models.Child, 0, len(parent.Children))
	for _, c := range parent.Children {
		if c.ID != childID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(parent.Children) {
		return false
	}
	updated := *parent
	updated.Children = kept
	s.parents[pi] = &updated
	return true
}

func (s *IdentityStore) replaceChild(pi, ci int, fn func(*models.Child)) *models.Child {
	updated := s.parents[pi].Children[ci].Clone()
	fn(updated)

	parent := *s.parents[pi]
	parent.Children = make([]*models.Child, len(s.parents[pi].Children))
	copy(parent.Children, s.parents[pi].Children)
	parent.Children[ci] = updated
	s.parents[pi] = &parent
	return updated.Clone()
}

func (s *IdentityStore) parentUsernameExists(username string) bool {
	for _, p := range s.parents {
		if p.Username == username {
			return true
		}
	}
	return false
}

func (s *IdentityStore) parentIndex(parentID string) int {
	for i, p := range s.parents {
		if p.ID == parentID {
			return i
		}
	}
	return -1
}

func (s *IdentityStore) childIndex(childID string) (int, int) {
	for pi, p := range s.parents {
		for ci, c := range p.Children {
			if c.ID == childID {
				return pi, ci
			}
		}
	}
	return -1, -1
}
