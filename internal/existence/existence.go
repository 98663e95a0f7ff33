package existence

import (
	"sort"
	"strings"
)

// Existence is the interface every entity in the universe implements.
// An entity is defined by its kind, an optional scalar payload folded into
// its digest, and a finite set of sub-entities.
type Existence interface {
	// Kind returns the entity's kind name, used for rendering when the
	// member set is empty.
	Kind() string

	// Members returns the entity's member set.
	Members() Set

	// Digest returns the content-addressed identity of the entity.
	Digest() string

	// String renders the entity: "(" + comma-joined members + ")", or the
	// kind name when the member set is empty.
	String() string
}

// Set is an immutable, deduplicated, unordered collection of entities.
// The zero value is the empty set.
type Set struct {
	members []Existence // sorted by digest, unique
}

// NewSet constructs a Set from the given members. Duplicates (by structural
// equality) collapse to one element. Returns an invalid-argument error if
// any member is nil.
func NewSet(members ...Existence) (Set, error) {
	if len(members) == 0 {
		return Set{}, nil
	}
	seen := make(map[string]bool, len(members))
	out := make([]Existence, 0, len(members))
	for _, m := range members {
		if m == nil {
			return Set{}, NewInvalidArgument("Set", "member set must not contain a nil entity")
		}
		d := m.Digest()
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Digest() < out[j].Digest() })
	return Set{members: out}, nil
}

// MustSet is like NewSet but panics on error. Use only in tests or when
// members are known to be valid.
func MustSet(members ...Existence) Set {
	s, err := NewSet(members...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of distinct members.
func (s Set) Len() int { return len(s.members) }

// Slice returns a copy of the members. Order is the internal digest order;
// callers must not rely on it beyond determinism.
func (s Set) Slice() []Existence {
	out := make([]Existence, len(s.members))
	copy(out, s.members)
	return out
}

// Contains reports whether the set holds an entity structurally equal to e.
func (s Set) Contains(e Existence) bool {
	if e == nil {
		return false
	}
	d := e.Digest()
	for _, m := range s.members {
		if m.Digest() == d {
			return true
		}
	}
	return false
}

// Equal reports set equality: same members, order-independent.
func (s Set) Equal(other Set) bool {
	if len(s.members) != len(other.members) {
		return false
	}
	for i := range s.members {
		if s.members[i].Digest() != other.members[i].Digest() {
			return false
		}
	}
	return true
}

// Render produces the shared rendering used by every kind in the universe:
// the kind name for an empty set, otherwise the parenthesized comma-joined
// member renderings.
func Render(kind string, s Set) string { return render(kind, s) }

func render(kind string, s Set) string {
	if s.Len() == 0 {
		return kind
	}
	parts := make([]string, len(s.members))
	for i, m := range s.members {
		parts[i] = m.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// entity carries the machinery shared by every concrete variant: the kind
// tag, the member set, and the precomputed digest.
type entity struct {
	kind    string
	members Set
	digest  string
}

func newEntity(kind string, payload []byte, members Set) entity {
	return entity{
		kind:    kind,
		members: members,
		digest:  DigestOf(kind, payload, members.members),
	}
}

func (e *entity) Kind() string   { return e.kind }
func (e *entity) Members() Set   { return e.members }
func (e *entity) Digest() string { return e.digest }
func (e *entity) String() string { return render(e.kind, e.members) }

// Nature is the bare structural entity. Negation on a Nature is the
// identity.
type Nature struct {
	entity
}

// NewNature constructs a Nature from the given members.
func NewNature(members ...Existence) (*Nature, error) {
	set, err := NewSet(members...)
	if err != nil {
		return nil, err
	}
	return &Nature{entity: newEntity("Nature", nil, set)}, nil
}

// Being is the positive existential variant. Its negation is a Void with
// the identical member set.
type Being struct {
	entity
}

// NewBeing constructs a Being from the given members.
func NewBeing(members ...Existence) (*Being, error) {
	set, err := NewSet(members...)
	if err != nil {
		return nil, err
	}
	return &Being{entity: newEntity("Being", nil, set)}, nil
}

// Void is the negative existential variant. Its negation is a Being with
// the identical member set.
type Void struct {
	entity
}

// NewVoid constructs a Void from the given members.
func NewVoid(members ...Existence) (*Void, error) {
	set, err := NewSet(members...)
	if err != nil {
		return nil, err
	}
	return &Void{entity: newEntity("Void", nil, set)}, nil
}

// newVoidFromSet builds a Void around an already-validated set.
func newVoidFromSet(set Set) *Void {
	return &Void{entity: newEntity("Void", nil, set)}
}

// newBeingFromSet builds a Being around an already-validated set.
func newBeingFromSet(set Set) *Being {
	return &Being{entity: newEntity("Being", nil, set)}
}

// VoidFromSet constructs a Void sharing an existing member set. Used by
// conversions that must preserve membership exactly.
func VoidFromSet(set Set) *Void { return newVoidFromSet(set) }

// BeingFromSet constructs a Being sharing an existing member set.
func BeingFromSet(set Set) *Being { return newBeingFromSet(set) }

// Negate applies structural negation. Being and Void swap, preserving the
// member set, so Negate(Negate(x)) is structurally equal to x. Every other
// variant is its own negation.
func Negate(e Existence) Existence {
	switch v := e.(type) {
	case *Being:
		return newVoidFromSet(v.members)
	case *Void:
		return newBeingFromSet(v.members)
	default:
		return e
	}
}
