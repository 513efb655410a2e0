package domain

// ProfileDraft is the edit-profile form, filled from the session identity.
type ProfileDraft struct {
	DisplayName  string
	ContactEmail string
}
