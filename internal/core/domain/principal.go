package domain

// Principal is the resolved, typed identity of the request's authenticated
// subject. It is assembled fresh on every authenticated request and carries
// exactly one role-specific profile reference:
//
//	role == creator  → CreatorID set, BusinessID empty
//	role == business → BusinessID set, CreatorID empty
//	role == admin    → neither set
type Principal struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	CreatorID  string `json:"creator_id,omitempty"`
	BusinessID string `json:"business_id,omitempty"`
}

// HasAnyRole reports whether the principal holds one of the given roles.
func (p *Principal) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

func (p *Principal) IsAdmin() bool    { return p.Role == RoleAdmin }
func (p *Principal) IsCreator() bool  { return p.Role == RoleCreator }
func (p *Principal) IsBusiness() bool { return p.Role == RoleBusiness }

// OwnsCreator reports whether the principal owns the given creator profile.
// Admins pass every ownership check.
func (p *Principal) OwnsCreator(creatorID string) bool {
	return p.IsAdmin() || (p.IsCreator() && p.CreatorID == creatorID)
}

// OwnsBusiness reports whether the principal owns the given business profile.
func (p *Principal) OwnsBusiness(businessID string) bool {
	return p.IsAdmin() || (p.IsBusiness() && p.BusinessID == businessID)
}
