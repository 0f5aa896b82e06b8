package domain

// Resource names a guarded entity kind
type Resource string

// Action names an operation on a Resource
type Action string

const (
	ResourceContribution Resource = "contribution"
	ResourceExpense      Resource = "expense"
	ResourceFeedback     Resource = "feedback"
	ResourceMember       Resource = "member"
	ResourceScreenshot   Resource = "screenshot"
	ResourceUser         Resource = "user"
)

const (
	ActionWrite   Action = "write"
	ActionRead    Action = "read"
	ActionVerify  Action = "verify"
	ActionReview  Action = "review"
	ActionList    Action = "list"
	ActionDelete  Action = "delete"
	ActionPromote Action = "promote"
)

// Permission is a single role grant
type Permission struct {
	Role     Role
	Resource Resource
	Action   Action
}

// DefaultPermissions is the grant table seeded into an empty policy store.
func DefaultPermissions() []Permission {
	return []Permission{
		{RoleAdmin, ResourceContribution, ActionWrite},
		{RoleAdmin, ResourceExpense, ActionWrite},
		{RoleAdmin, ResourceMember, ActionVerify},
		{RoleAdmin, ResourceFeedback, ActionRead},
		{RoleAdmin, ResourceScreenshot, ActionReview},
		{RoleAdmin, ResourceUser, ActionList},
		{RoleSuperAdmin, ResourceFeedback, ActionRead},
		{RoleSuperAdmin, ResourceUser, ActionDelete},
		{RoleSuperAdmin, ResourceUser, ActionPromote},
		{RoleSuperAdmin, ResourceUser, ActionList},
		{RoleSuperAdmin, ResourceScreenshot, ActionReview},
	}
}
