package entity

// Relationship describes how a citizen relates to the head of their
// household. At most one citizen per household holds RelationshipHead.
type Relationship string

const (
	RelationshipHead        Relationship = "HEAD"
	RelationshipSpouse      Relationship = "SPOUSE"
	RelationshipChild       Relationship = "CHILD"
	RelationshipParent      Relationship = "PARENT"
	RelationshipGrandparent Relationship = "GRANDPARENT"
	RelationshipGrandchild  Relationship = "GRANDCHILD"
	RelationshipSibling     Relationship = "SIBLING"
	RelationshipOther       Relationship = "OTHER"
)

// Valid reports whether the relationship is one of the enumerated values.
func (r Relationship) Valid() bool {
	switch r {
	case RelationshipHead, RelationshipSpouse, RelationshipChild,
		RelationshipParent, RelationshipGrandparent, RelationshipGrandchild,
		RelationshipSibling, RelationshipOther:
		return true
	}

	return false
}
