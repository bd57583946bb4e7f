package saved_filter

import (
	"time"

	"go-portal/internal/features/directory"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavedFilter is a named directory filter state a user can recall. Public
// filters are visible to the whole tenant.
type SavedFilter struct {
	ID          primitive.ObjectID    `json:"id" bson:"_id,omitempty"`
	Name        string                `json:"name" bson:"name"`
	Description string                `json:"description,omitempty" bson:"description,omitempty"`
	UserID      primitive.ObjectID    `json:"user_id" bson:"user_id"`
	TenantID    primitive.ObjectID    `json:"tenant_id" bson:"tenant_id"`
	IsPublic    bool                  `json:"is_public" bson:"is_public"`
	IsDefault   bool                  `json:"is_default" bson:"is_default"`
	State       directory.FilterState `json:"state" bson:"state"`
	CreatedAt   time.Time             `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at" bson:"updated_at"`
}
