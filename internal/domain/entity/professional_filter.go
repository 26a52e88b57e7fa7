package entity

// ProfessionalFilter is a domain-level filter for querying professionals.
type ProfessionalFilter struct {
	Search     string // case-insensitive substring match over name, profession, address, contact
	Profession string // exact match
	Ordering   string // "preferred_name", "profession", "created_at", each with optional "-" prefix
}
