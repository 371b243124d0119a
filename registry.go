package transliterate

import (
	"fmt"
	"sort"
)

// Registry is an immutable lookup table of profiles, keyed by profile name.
type Registry struct {
	profiles map[string]*Profile
	keys     []string
}

// NewRegistry creates a registry from a set of compiled profiles.
// Profile names must be unique.
func NewRegistry(profiles ...*Profile) (*Registry, error) {
	reg := &Registry{profiles: make(map[string]*Profile, len(profiles))}
	if err := reg.add(profiles); err != nil {
		return nil, err
	}
	tracer().Infof("registry with %d profiles: %v", len(reg.keys), reg.keys)
	return reg, nil
}

func (reg *Registry) add(profiles []*Profile) error {
	for _, p := range profiles {
		if p.IsEmpty() {
			name := ""
			if p != nil {
				name = p.Name
			}
			return fmt.Errorf("registry: profile %q: %w", name, ErrEmptyProfile)
		}
		if _, exists := reg.profiles[p.Name]; exists {
			return fmt.Errorf("registry: %w: %q", ErrDuplicateProfile, p.Name)
		}
		reg.profiles[p.Name] = p
		reg.keys = append(reg.keys, p.Name)
	}
	sort.Strings(reg.keys)
	return nil
}

// With returns a new registry containing the profiles of reg plus profiles.
// reg itself is not modified. A nil reg is treated as an empty registry.
func (reg *Registry) With(profiles ...*Profile) (*Registry, error) {
	if reg == nil {
		return NewRegistry(profiles...)
	}
	ext := &Registry{
		profiles: make(map[string]*Profile, len(reg.profiles)+len(profiles)),
		keys:     make([]string, len(reg.keys)),
	}
	copy(ext.keys, reg.keys)
	for key, p := range reg.profiles {
		ext.profiles[key] = p
	}
	if err := ext.add(profiles); err != nil {
		return nil, err
	}
	return ext, nil
}

// Lookup returns the profile registered for key.
func (reg *Registry) Lookup(key string) (*Profile, bool) {
	if reg == nil {
		return nil, false
	}
	p, ok := reg.profiles[key]
	return p, ok
}

// Profile returns the profile registered for key. For unknown keys it returns
// an empty profile which leaves every text unchanged.
func (reg *Registry) Profile(key string) *Profile {
	if p, ok := reg.Lookup(key); ok {
		return p
	}
	return identity
}

// Keys returns the registered profile names in sorted order.
func (reg *Registry) Keys() []string {
	if reg == nil {
		return nil
	}
	keys := make([]string, len(reg.keys))
	copy(keys, reg.keys)
	return keys
}

// Transliterate converts text with the profile registered for key.
// Unknown keys yield text unchanged, with an empty language code.
func (reg *Registry) Transliterate(key, text string) Result {
	p := reg.Profile(key)
	res := Result{
		Text: p.Transliterate(text),
		Lang: p.Code,
	}
	if res.Direction = directionOf(res.Text); res.Direction == Neutral {
		res.Direction = p.Direction()
	}
	return res
}
