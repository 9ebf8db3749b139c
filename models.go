package victorops

import "time"

// String returns a pointer to the given string.
// Useful for populating optional request fields.
func String(v string) *string { return &v }

// Int returns a pointer to the given int.
func Int(v int) *int { return &v }

// Bool returns a pointer to the given bool.
func Bool(v bool) *bool { return &v }

// PagedEntity contains basic name and slug information.
type PagedEntity struct {
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
}

// PagedPolicy pairs a paged escalation policy with its team.
type PagedPolicy struct {
	Policy *PagedEntity `json:"policy,omitempty"`
	Team   *PagedEntity `json:"team,omitempty"`
}

// Transition represents a state transition in an incident timeline.
type Transition struct {
	Name     *string    `json:"Name,omitempty"`
	At       *time.Time `json:"At,omitempty"`
	Message  *string    `json:"Message,omitempty"`
	By       *string    `json:"By,omitempty"`
	Manually *bool      `json:"Manually,omitempty"`
	AlertID  *string    `json:"alertId,omitempty"`
	AlertURL *string    `json:"alertUrl,omitempty"`
}

// Incident represents a VictorOps incident. Every field is optional on the
// wire; absent fields decode to nil, never to a zero value.
type Incident struct {
	AlertCount        *int          `json:"alertCount,omitempty"`
	CurrentPhase      *string       `json:"currentPhase,omitempty"`
	EntityDisplayName *string       `json:"entityDisplayName,omitempty"`
	EntityID          *string       `json:"entityId,omitempty"`
	EntityState       *string       `json:"entityState,omitempty"`
	EntityType        *string       `json:"entityType,omitempty"`
	Host              *string       `json:"host,omitempty"`
	IncidentNumber    *string       `json:"incidentNumber,omitempty"`
	LastAlertID       *string       `json:"lastAlertId,omitempty"`
	LastAlertTime     *time.Time    `json:"lastAlertTime,omitempty"`
	Service           *string       `json:"service,omitempty"`
	StartTime         *time.Time    `json:"startTime,omitempty"`
	PagedTeams        []string      `json:"pagedTeams,omitempty"`
	PagedUsers        []string      `json:"pagedUsers,omitempty"`
	PagedPolicies     []PagedPolicy `json:"pagedPolicies,omitempty"`
	Transitions       []Transition  `json:"transitions,omitempty"`
}

// IncidentResponse contains a list of incidents.
type IncidentResponse struct {
	Incidents []Incident `json:"incidents,omitempty"`
}

// User represents a VictorOps user.
type User struct {
	FirstName           *string `json:"firstName,omitempty"`
	LastName            *string `json:"lastName,omitempty"`
	Username            *string `json:"username,omitempty"`
	Email               *string `json:"email,omitempty"`
	Admin               *bool   `json:"admin,omitempty"`
	ExpirationHours     *int    `json:"expirationHours,omitempty"`
	CreatedAt           *string `json:"createdAt,omitempty"`
	PasswordLastUpdated *string `json:"passwordLastUpdated,omitempty"`
	Verified            *bool   `json:"verified,omitempty"`
}

// UserList contains users as returned by the v1 API.
//
// The v1 endpoint nests an extra list layer; callers who want a flat list
// must flatten it themselves. This is an upstream quirk of the v1 schema,
// preserved for wire compatibility.
type UserList struct {
	Users [][]User `json:"users"`
}

// UserListV2 contains users as returned by the v2 API.
type UserListV2 struct {
	Users []User `json:"users"`
}

// Team represents a VictorOps team.
type Team struct {
	Name          *string `json:"name,omitempty"`
	Slug          *string `json:"slug,omitempty"`
	MemberCount   *int    `json:"memberCount,omitempty"`
	Version       *int    `json:"version,omitempty"`
	IsDefaultTeam *bool   `json:"isDefaultTeam,omitempty"`
}

// TeamMembers contains the members of a team.
type TeamMembers struct {
	Members []User `json:"members,omitempty"`
}

// Admin represents a team administrator.
type Admin struct {
	Username  *string `json:"username,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	SelfURL   *string `json:"_selfUrl,omitempty"`
}

// TeamAdmins contains the administrators of a team.
type TeamAdmins struct {
	Admin []Admin `json:"admin,omitempty"`
}

// ContactMethod is a minimal contact method entry as returned by the
// contact-method listing endpoints. IDs are JSON numbers on the wire.
type ContactMethod struct {
	ID    float64 `json:"id"`
	Label string  `json:"label"`
}

// EmailsResponse contains a user's email contact methods.
type EmailsResponse struct {
	ContactMethods []ContactMethod `json:"contactMethods"`
}

// APITeam identifies a team in schedule responses.
type APITeam struct {
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
}

// APIEscalationPolicy identifies an escalation policy in schedule responses.
type APIEscalationPolicy struct {
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
}

// APIUser identifies a user in schedule responses.
type APIUser struct {
	Username *string `json:"username,omitempty"`
}

// APIOnCallOverride represents an on-call override.
type APIOnCallOverride struct {
	OrigOnCallUser     *APIUser             `json:"origOnCallUser,omitempty"`
	OverrideOnCallUser *APIUser             `json:"overrideOnCallUser,omitempty"`
	Start              *time.Time           `json:"start,omitempty"`
	End                *time.Time           `json:"end,omitempty"`
	Policy             *APIEscalationPolicy `json:"policy,omitempty"`
}

// APIOnCallRoll represents one on-call rotation period.
type APIOnCallRoll struct {
	Start      *time.Time `json:"start,omitempty"`
	End        *time.Time `json:"end,omitempty"`
	OnCallUser *APIUser   `json:"onCallUser,omitempty"`
	IsRoll     *bool      `json:"isRoll,omitempty"`
}

// APIOnCallEntry represents one on-call schedule entry.
type APIOnCallEntry struct {
	OnCallUser         *APIUser        `json:"onCallUser,omitempty"`
	OverrideOnCallUser *APIUser        `json:"overrideOnCallUser,omitempty"`
	OnCallType         *string         `json:"onCallType,omitempty"`
	RotationName       *string         `json:"rotationName,omitempty"`
	ShiftName          *string         `json:"shiftName,omitempty"`
	ShiftRoll          *time.Time      `json:"shiftRoll,omitempty"`
	Rolls              []APIOnCallRoll `json:"rolls,omitempty"`
}

// APIEscalationPolicySchedule is the schedule for one escalation policy.
type APIEscalationPolicySchedule struct {
	Policy    *APIEscalationPolicy `json:"policy,omitempty"`
	Schedule  []APIOnCallEntry     `json:"schedule,omitempty"`
	Overrides []APIOnCallOverride  `json:"overrides,omitempty"`
}

// APITeamSchedule is a team's on-call schedule.
type APITeamSchedule struct {
	Team      *APITeam                      `json:"team,omitempty"`
	Schedules []APIEscalationPolicySchedule `json:"schedules,omitempty"`
}

// APIUserSchedule is a user's on-call schedule across teams.
type APIUserSchedule struct {
	Schedules []APITeamSchedule `json:"teamSchedules,omitempty"`
}

// TakeRequest asks the API to move on-call duty between two users.
type TakeRequest struct {
	FromUser *string `json:"fromUser,omitempty"`
	ToUser   *string `json:"toUser,omitempty"`
}

// TakeResponse is the result of a take request.
type TakeResponse struct {
	Result *string `json:"result,omitempty"`
}

// EscalationPolicyStepEntry is one target in an escalation policy step.
type EscalationPolicyStepEntry struct {
	ExecutionType *string           `json:"executionType,omitempty"`
	User          map[string]string `json:"user,omitempty"`
	RotationGroup map[string]string `json:"rotationGroup,omitempty"`
	Webhook       map[string]string `json:"webhook,omitempty"`
	Email         map[string]string `json:"email,omitempty"`
	TargetPolicy  map[string]string `json:"targetPolicy,omitempty"`
}

// EscalationPolicyStep is one step of an escalation policy.
type EscalationPolicyStep struct {
	Timeout int                         `json:"timeout"`
	Entries []EscalationPolicyStepEntry `json:"entries"`
}

// EscalationPolicy represents an escalation policy. Name, TeamID, and ID
// are guaranteed by the API and therefore not optional.
type EscalationPolicy struct {
	Name                       string                 `json:"name"`
	TeamID                     string                 `json:"teamSlug"`
	IgnoreCustomPagingPolicies bool                   `json:"ignoreCustomPagingPolicies"`
	Steps                      []EscalationPolicyStep `json:"steps"`
	ID                         string                 `json:"slug"`
}

// EscalationPolicyListDetail names an entity in an escalation policy list.
type EscalationPolicyListDetail struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// EscalationPolicyListElement pairs a listed policy with its team.
type EscalationPolicyListElement struct {
	Policy EscalationPolicyListDetail `json:"policy"`
	Team   EscalationPolicyListDetail `json:"team"`
}

// EscalationPolicyList contains a list of escalation policies.
type EscalationPolicyList struct {
	Policies []EscalationPolicyListElement `json:"policies"`
}

// RoutingKey represents a routing key for directing alerts.
type RoutingKey struct {
	RoutingKey *string  `json:"routingKey,omitempty"`
	Targets    []string `json:"targets,omitempty"`
}

// RoutingKeyResponseTargets is a target in a routing key response.
type RoutingKeyResponseTargets struct {
	PolicySlug *string `json:"policySlug,omitempty"`
}

// RoutingKeyResponse is one routing key as returned by the API.
type RoutingKeyResponse struct {
	RoutingKey *string                     `json:"routingKey,omitempty"`
	Targets    []RoutingKeyResponseTargets `json:"targets,omitempty"`
}

// RoutingKeyResponseList contains a list of routing keys.
type RoutingKeyResponseList struct {
	RoutingKeys []RoutingKeyResponse `json:"routingKeys,omitempty"`
}

// ContactType identifies the kind of a contact method.
type ContactType int

const (
	// ContactTypeUndetermined means the contact has neither a phone number
	// nor an email address and cannot be classified.
	ContactTypeUndetermined ContactType = iota
	// ContactTypePhone is a phone or SMS contact method.
	ContactTypePhone
	// ContactTypeEmail is an email contact method.
	ContactTypeEmail
	// ContactTypeDevice is a mobile push notification contact method.
	ContactTypeDevice
)

// EndpointNoun returns the contact-methods path segment for this type,
// or "" for an undetermined type.
func (t ContactType) EndpointNoun() string {
	switch t {
	case ContactTypePhone:
		return "phones"
	case ContactTypeEmail:
		return "emails"
	case ContactTypeDevice:
		return "devices"
	default:
		return ""
	}
}

func (t ContactType) String() string {
	switch t {
	case ContactTypePhone:
		return "Phone"
	case ContactTypeEmail:
		return "Email"
	case ContactTypeDevice:
		return "Device"
	default:
		return "Undetermined"
	}
}

// ContactTypeFromNotification maps a notification type string to a
// ContactType. The second return value is false for unknown strings.
func ContactTypeFromNotification(notificationType string) (ContactType, bool) {
	switch notificationType {
	case "push":
		return ContactTypeDevice, true
	case "email":
		return ContactTypeEmail, true
	case "phone", "sms":
		return ContactTypePhone, true
	default:
		return ContactTypeUndetermined, false
	}
}

// Contact represents a contact method for a user. The variant is implied by
// which of PhoneNumber or Email is populated; see [Contact.Type].
type Contact struct {
	PhoneNumber *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Label       *string `json:"label,omitempty"`
	Rank        *int    `json:"rank,omitempty"`
	ExtID       *string `json:"extId,omitempty"`
	ID          *int    `json:"id,omitempty"`
	Value       *string `json:"value,omitempty"`
	Verified    *string `json:"verified,omitempty"`
}

// Type classifies the contact by its populated fields. A contact with a
// phone number is a phone contact even when it also has an email; one with
// neither is undetermined.
func (c *Contact) Type() ContactType {
	switch {
	case c.PhoneNumber != nil:
		return ContactTypePhone
	case c.Email != nil:
		return ContactTypeEmail
	default:
		return ContactTypeUndetermined
	}
}

// ContactGroup is a group of contact methods.
type ContactGroup struct {
	ContactMethods []Contact `json:"contactMethods"`
}

// AllContactResponse contains every contact method for a user, grouped by
// kind.
type AllContactResponse struct {
	Phones  *ContactGroup `json:"phones,omitempty"`
	Emails  *ContactGroup `json:"emails,omitempty"`
	Devices *ContactGroup `json:"devices,omitempty"`
}

// GetAllContactResponse contains all contact methods of a single kind.
type GetAllContactResponse struct {
	ContactMethods []Contact `json:"contactMethods,omitempty"`
}
