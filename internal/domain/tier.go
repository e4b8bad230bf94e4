package domain

// Tier is the privilege level a session carries.
type Tier int

const (
	TierAnonymous Tier = iota
	TierUser
	TierAdmin
)

func (t Tier) String() string {
	switch t {
	case TierUser:
		return "user"
	case TierAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}
