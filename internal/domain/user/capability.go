package user

// Capability is one operation a role is allowed to drive through the menus.
// The reservation engine itself is role-agnostic; only the CLI layer
// consults these sets.
type Capability string

const (
	CapViewLogs           Capability = "view-logs"
	CapViewAvailability   Capability = "view-availability"
	CapViewOwnBookings    Capability = "view-own-bookings"
	CapReserve            Capability = "reserve"
	CapUpdateAny          Capability = "update-any"
	CapUpdateOwn          Capability = "update-own"
	CapCancelAny          Capability = "cancel-any"
	CapCancelOwn          Capability = "cancel-own"
	CapCreateReceptionist Capability = "create-receptionist"
)

var capabilities = map[Role][]Capability{
	RoleAdmin: {
		CapViewLogs, CapViewAvailability, CapUpdateAny, CapCancelAny, CapCreateReceptionist,
	},
	RoleReceptionist: {
		CapViewLogs, CapViewAvailability,
	},
	RoleCustomer: {
		CapViewOwnBookings, CapReserve, CapViewAvailability, CapUpdateOwn, CapCancelOwn,
	},
}

// Can reports whether the role holds the capability.
func (r Role) Can(c Capability) bool {
	for _, have := range capabilities[r] {
		if have == c {
			return true
		}
	}
	return false
}
