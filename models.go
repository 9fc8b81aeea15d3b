package articles

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const (
	// AdminGroupCode is the code of the group that conveys admin rights
	AdminGroupCode = "admin"
	// AdminGroupName is the display name used when the group is lazily created
	AdminGroupName = "Admin"
)

// User is the user model. The password hash is deliberately excluded from
// JSON output; it must never leave the service boundary.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name          string     `bun:"name,notnull" json:"name,omitempty"`
	Email         string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash  string     `bun:"password_hash" json:"-"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Group is a permission bucket, keyed by code
type Group struct {
	bun.BaseModel `bun:"table:groups,alias:grp"`
	Code          string `bun:"code,pk" json:"code,omitempty"`
	Name          string `bun:"name,notnull" json:"name,omitempty"`
}

// GroupMembership links a user to a group, unique per (group, user)
type GroupMembership struct {
	bun.BaseModel `bun:"table:group_memberships,alias:gm"`
	GroupCode     string     `bun:"group_code,pk" json:"group_code,omitempty"`
	UserID        uuid.UUID  `bun:"user_id,pk,type:uuid" json:"user_id,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

// Article is the article model
type Article struct {
	bun.BaseModel `bun:"table:articles,alias:art"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Title         string     `bun:"title,notnull" json:"title,omitempty"`
	Text          string     `bun:"text,notnull" json:"text,omitempty"`
	AuthorID      uuid.UUID  `bun:"author_id,notnull,type:uuid" json:"author_id,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}
