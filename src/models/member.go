package models

import (
	"strings"
	"time"
)

// Relationship of a member to the household owner.
type Relationship string

const (
	RelationshipSelf     Relationship = "self"
	RelationshipWife     Relationship = "wife"
	RelationshipHusband  Relationship = "husband"
	RelationshipSon      Relationship = "son"
	RelationshipDaughter Relationship = "daughter"
	RelationshipFather   Relationship = "father"
	RelationshipMother   Relationship = "mother"
	RelationshipBrother  Relationship = "brother"
	RelationshipSister   Relationship = "sister"
	RelationshipOther    Relationship = "other"
)

// Relationships lists every relationship in display order.
var Relationships = []Relationship{
	RelationshipSelf, RelationshipWife, RelationshipHusband, RelationshipSon, RelationshipDaughter,
	RelationshipFather, RelationshipMother, RelationshipBrother, RelationshipSister, RelationshipOther,
}

// Label is the display form ("wife" -> "Wife").
func (r Relationship) Label() string {
	if r == "" {
		return ""
	}
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}

// ZakatMember is a person owning one set of calculator records.
type ZakatMember struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Relationship Relationship `json:"relationship"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// IsSelf reports whether m is the household owner.
func (m ZakatMember) IsSelf() bool { return m.Relationship == RelationshipSelf }
