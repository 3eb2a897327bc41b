package highlight

import "github.com/matzehuels/coursemap/pkg/catalog"

// Focus is the caller-owned focus state: a transient hover target and an
// optional lock. The zero value has no focus. Methods never modify the
// receiver; they return the next state.
type Focus struct {
	hovered string
	locked  string
}

// Hover sets the hover target. While locked, the hover target is still
// tracked but does not affect [Focus.Effective].
func (f Focus) Hover(id string) Focus {
	f.hovered = id
	return f
}

// Leave clears the hover target.
func (f Focus) Leave() Focus {
	f.hovered = ""
	return f
}

// Lock locks focus on id, replacing any previous lock. An empty id unlocks.
func (f Focus) Lock(id string) Focus {
	f.locked = id
	return f
}

// Unlock clears the lock. Unlocking an unlocked focus is a no-op.
func (f Focus) Unlock() Focus {
	f.locked = ""
	return f
}

// Toggle unlocks if locked, otherwise locks the hover target. With neither
// a lock nor a hover target it returns f unchanged.
func (f Focus) Toggle() Focus {
	if f.locked != "" {
		return f.Unlock()
	}
	if f.hovered != "" {
		return f.Lock(f.hovered)
	}
	return f
}

// Hovered returns the hover target.
func (f Focus) Hovered() (string, bool) { return f.hovered, f.hovered != "" }

// Locked returns the lock target.
func (f Focus) Locked() (string, bool) { return f.locked, f.locked != "" }

// IsLocked reports whether a lock is set.
func (f Focus) IsLocked() bool { return f.locked != "" }

// Effective returns the focal course ID: the lock target if set, else the
// hover target, else false.
func (f Focus) Effective() (string, bool) {
	if f.locked != "" {
		return f.locked, true
	}
	if f.hovered != "" {
		return f.hovered, true
	}
	return "", false
}

// Focal resolves the effective course ID in reg. It returns nil when there
// is no focus or the ID is unknown.
func (f Focus) Focal(reg *catalog.Registry) *catalog.Course {
	id, ok := f.Effective()
	if !ok {
		return nil
	}
	c, ok := reg.ByID(id)
	if !ok {
		return nil
	}
	return &c
}
