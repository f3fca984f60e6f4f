package dto

// ProfileResponse describes a user profile.
type ProfileResponse struct {
	UserID    int64  `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	ContactNo string `json:"contact_no"`
	Address   string `json:"address"`
	Role      string `json:"role"`
}

// ProfileUpdateRequest describes editable profile fields.
type ProfileUpdateRequest struct {
	Name      string `json:"name"`
	ContactNo string `json:"contact_no"`
	Address   string `json:"address"`
}

// DistributorResponse is an entry of the distributor directory.
type DistributorResponse struct {
	UserID    int64  `json:"user_id"`
	Name      string `json:"name"`
	ContactNo string `json:"contact_no"`
	Address   string `json:"address"`
}
