package domain

import "time"

// Team has no UpdatedAt; only its creation time is tracked.
// MemberIDs never contains OwnerID: effective membership is {OwnerID} ∪ MemberIDs.
type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     string    `json:"ownerId"`
	MemberIDs   []string  `json:"memberIds"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HasMember reports effective membership (owner or listed member).
func (t *Team) HasMember(userID string) bool {
	if t.OwnerID == userID {
		return true
	}
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// AllMemberIDs returns the owner followed by the listed members.
func (t *Team) AllMemberIDs() []string {
	ids := make([]string, 0, len(t.MemberIDs)+1)
	ids = append(ids, t.OwnerID)
	return append(ids, t.MemberIDs...)
}

// MemberCount counts the owner plus the listed members.
func (t *Team) MemberCount() int {
	return len(t.MemberIDs) + 1
}

type TeamInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	MemberIDs   []string `json:"memberIds"`
}

type TeamPatch struct {
	Name        *string
	Description *string
	Color       *string
	MemberIDs   *[]string
}
