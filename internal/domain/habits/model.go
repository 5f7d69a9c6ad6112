package habits

import "time"

type Scope string

const (
	ScopeGlobal   Scope = "global"
	ScopePersonal Scope = "personal"
)

type Habit struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Scope     Scope     `gorm:"type:text;not null"`
	OwnerID   *string   `gorm:"type:uuid;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (h Habit) IsGlobal() bool {
	return h.Scope == ScopeGlobal
}

// OwnedBy reports whether h is a personal habit belonging to userID.
func (h Habit) OwnedBy(userID string) bool {
	return h.Scope == ScopePersonal && h.OwnerID != nil && *h.OwnerID == userID
}
