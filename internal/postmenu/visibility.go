package postmenu

// Visibility decides who sees an entry or a whole section.
type Visibility int

const (
	// Everyone is the default.
	Everyone Visibility = iota
	// OwnerOnly entries are hidden unless the viewer owns the profile.
	OwnerOnly
	// ViewerOnly entries are hidden when the viewer owns the profile.
	ViewerOnly
)

// String returns the lower-case name used in logs and CLI output.
func (v Visibility) String() string {
	switch v {
	case OwnerOnly:
		return "owner"
	case ViewerOnly:
		return "viewer"
	default:
		return "everyone"
	}
}

// Viewer describes the relationship between the current user and the
// profile being displayed.
type Viewer struct {
	IsOwnProfile bool
}

// Allows reports whether an entry or section with visibility v is shown.
func (viewer Viewer) Allows(v Visibility) bool {
	switch v {
	case OwnerOnly:
		return viewer.IsOwnProfile
	case ViewerOnly:
		return !viewer.IsOwnProfile
	default:
		return true
	}
}
