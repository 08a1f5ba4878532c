package pedigree

import "sort"

// Family aggregates FamilyMembers under a shared family id and tracks at
// most one proband (the index affected individual). Members are added
// one at a time; a member's declared parents must already be present in
// the family before it can be added, which keeps the family buildable
// only in parent-before-child order (matching how a PED file is
// typically topologically sorted).
type Family struct {
	familyID  string
	members   map[string]*FamilyMember
	probandID string
}

// NewFamily creates an empty family with the given id.
func NewFamily(familyID string) (*Family, error) {
	if familyID == "" {
		return nil, NewValidationError("family_id", "family id must not be empty", familyID)
	}
	return &Family{
		familyID: familyID,
		members:  make(map[string]*FamilyMember),
	}, nil
}

func (f *Family) ID() string { return f.familyID }

// AddMember inserts m into the family. m's family id must match, its id
// must not already be present, and any declared parent must already be
// a member of the correct sex.
func (f *Family) AddMember(m *FamilyMember) error {
	if m == nil {
		return NewValidationError("member", "member must not be nil", nil)
	}
	if m.FamilyID() != f.familyID {
		return NewValidationError("family_id", "member belongs to a different family", m.FamilyID())
	}
	if _, exists := f.members[m.ID()]; exists {
		return NewValidationError("id", "duplicate member id", m.ID())
	}
	if m.HasMum() {
		mum, ok := f.members[m.MumID()]
		if !ok {
			return NewValidationError("mum", "mother must be added to the family before the child", m.MumID())
		}
		if !mum.IsFemale() {
			return NewValidationError("mum", "mother must be FEMALE", m.MumID())
		}
	}
	if m.HasDad() {
		dad, ok := f.members[m.DadID()]
		if !ok {
			return NewValidationError("dad", "father must be added to the family before the child", m.DadID())
		}
		if !dad.IsMale() {
			return NewValidationError("dad", "father must be MALE", m.DadID())
		}
	}
	f.members[m.ID()] = m
	return nil
}

// Member returns the member with the given id, or nil if absent.
func (f *Family) Member(id string) *FamilyMember {
	return f.members[id]
}

// Has reports whether id names a member of the family.
func (f *Family) Has(id string) bool {
	_, ok := f.members[id]
	return ok
}

// Mum returns the mother of m, or nil if unrecorded.
func (f *Family) Mum(m *FamilyMember) *FamilyMember {
	if m == nil || !m.HasMum() {
		return nil
	}
	return f.members[m.MumID()]
}

// Dad returns the father of m, or nil if unrecorded.
func (f *Family) Dad(m *FamilyMember) *FamilyMember {
	if m == nil || !m.HasDad() {
		return nil
	}
	return f.members[m.DadID()]
}

// SetProband designates id as the family's proband. The member must
// already exist and must be affected — an unaffected proband is a
// validation error, not a silently-accepted state.
func (f *Family) SetProband(id string) error {
	m, ok := f.members[id]
	if !ok {
		return NewValidationError("proband", "proband must be an existing member", id)
	}
	if !m.Affected() {
		return NewValidationError("proband", "proband must be affected", id)
	}
	f.probandID = id
	return nil
}

// ProbandID returns the id of the designated proband, or "" if none.
func (f *Family) ProbandID() string { return f.probandID }

// Proband returns the designated proband member, or nil if none has been
// set.
func (f *Family) Proband() *FamilyMember {
	if f.probandID == "" {
		return nil
	}
	return f.members[f.probandID]
}

// HasProband reports whether a proband has been designated.
func (f *Family) HasProband() bool { return f.probandID != "" }

// Len returns the number of members in the family.
func (f *Family) Len() int { return len(f.members) }

// IDs returns all member ids in deterministic (sorted) order.
func (f *Family) IDs() []string {
	ids := make([]string, 0, len(f.members))
	for id := range f.members {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// filterMembers returns, in sorted-id order, every member for which pred
// is true.
func (f *Family) filterMembers(pred func(*FamilyMember) bool) []*FamilyMember {
	var out []*FamilyMember
	for _, id := range f.IDs() {
		m := f.members[id]
		if pred(m) {
			out = append(out, m)
		}
	}
	return out
}

// Affected returns every affected member, sorted by id.
func (f *Family) Affected() []*FamilyMember {
	return f.filterMembers((*FamilyMember).Affected)
}

// Unaffected returns every unaffected member, sorted by id.
func (f *Family) Unaffected() []*FamilyMember {
	return f.filterMembers(func(m *FamilyMember) bool { return !m.Affected() })
}

// Males returns every male member, sorted by id.
func (f *Family) Males() []*FamilyMember {
	return f.filterMembers((*FamilyMember).IsMale)
}

// Females returns every female member, sorted by id.
func (f *Family) Females() []*FamilyMember {
	return f.filterMembers((*FamilyMember).IsFemale)
}

// Children returns every member whose mum or dad is parent, sorted by id.
func (f *Family) Children(parent *FamilyMember) []*FamilyMember {
	if parent == nil {
		return nil
	}
	return f.filterMembers(func(m *FamilyMember) bool {
		return m.MumID() == parent.ID() || m.DadID() == parent.ID()
	})
}

// Sons returns every male child of parent, sorted by id.
func (f *Family) Sons(parent *FamilyMember) []*FamilyMember {
	return filterSex(f.Children(parent), Male)
}

// Daughters returns every female child of parent, sorted by id.
func (f *Family) Daughters(parent *FamilyMember) []*FamilyMember {
	return filterSex(f.Children(parent), Female)
}

func filterSex(members []*FamilyMember, sex Sex) []*FamilyMember {
	var out []*FamilyMember
	for _, m := range members {
		if m.Sex() == sex {
			out = append(out, m)
		}
	}
	return out
}

// Siblings returns every member sharing at least one recorded parent
// with m, excluding m itself, sorted by id.
func (f *Family) Siblings(m *FamilyMember) []*FamilyMember {
	if m == nil {
		return nil
	}
	return f.filterMembers(func(other *FamilyMember) bool {
		if other.ID() == m.ID() {
			return false
		}
		sharesMum := m.HasMum() && other.MumID() == m.MumID()
		sharesDad := m.HasDad() && other.DadID() == m.DadID()
		return sharesMum || sharesDad
	})
}

// AffectedSiblings returns the affected subset of Siblings(m).
func (f *Family) AffectedSiblings(m *FamilyMember) []*FamilyMember {
	return filterAffected(f.Siblings(m), true)
}

// UnaffectedSiblings returns the unaffected subset of Siblings(m).
func (f *Family) UnaffectedSiblings(m *FamilyMember) []*FamilyMember {
	return filterAffected(f.Siblings(m), false)
}

func filterAffected(members []*FamilyMember, affected bool) []*FamilyMember {
	var out []*FamilyMember
	for _, m := range members {
		if m.Affected() == affected {
			out = append(out, m)
		}
	}
	return out
}
