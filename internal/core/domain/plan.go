package domain

// Subscription plans. Anything other than PlanFree carries no contact quota.
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

// FreeContactLimit is the maximum number of contacts a free-plan user may hold.
const FreeContactLimit = 5

// CanCreateContact reports whether a user on the given plan with used
// existing contacts may create another one.
func CanCreateContact(plan string, used int) bool {
	return plan != PlanFree || used < FreeContactLimit
}

// ContactLimit returns the contact quota for a plan, or nil when unlimited.
func ContactLimit(plan string) *int {
	if plan == PlanFree {
		limit := FreeContactLimit
		return &limit
	}
	return nil
}
