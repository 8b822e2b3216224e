package entity

// SentinelAdminID is the reserved subject identifying the configuration-based
// administrator. That identity has no database row, so it must be recognized
// before any store lookup.
const SentinelAdminID = "admin"

// Principal is the resolved identity attached to a request after successful
// authentication. It is either the sentinel admin or a stored user; it lives
// only for the duration of one request and is never persisted.
type Principal struct {
	// ID is the decimal user ID, or SentinelAdminID for the sentinel admin.
	ID      string
	Name    string
	Email   string
	IsAdmin bool
}

// IsSentinel reports whether the principal is the configuration-based admin.
func (p *Principal) IsSentinel() bool {
	return p.ID == SentinelAdminID
}
