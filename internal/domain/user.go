package domain

import "time"

// Profile mirrors the fields of an externally-owned identity that the shop
// needs locally. The identity collaborator remains the source of truth.
type Profile struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	PhotoURL  string    `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// AdminMembership is a side-table marker. Admin status is membership in the
// admins collection, not a flag on the profile.
type AdminMembership struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	GrantedBy string    `bson:"granted_by" json:"granted_by"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
