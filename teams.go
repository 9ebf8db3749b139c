package victorops

import (
	"context"
	"net/http"
	"strings"

	"github.com/tphakala/go-victorops/internal/api"
)

// TeamService provides operations on VictorOps teams.
type TeamService interface {
	// Create creates a new team.
	Create(ctx context.Context, team *Team, opts ...RequestOption) (*Team, *RequestDetails, error)

	// Get retrieves a team by its slug.
	Get(ctx context.Context, teamID string, opts ...RequestOption) (*Team, *RequestDetails, error)

	// List retrieves all teams.
	List(ctx context.Context, opts ...RequestOption) ([]Team, *RequestDetails, error)

	// Update modifies an existing team. The Name field must be set; it
	// identifies the team on the URL path.
	Update(ctx context.Context, team *Team, opts ...RequestOption) (*Team, *RequestDetails, error)

	// Delete removes a team.
	Delete(ctx context.Context, teamID string, opts ...RequestOption) (*RequestDetails, error)

	// Members retrieves all members of a team.
	Members(ctx context.Context, teamID string, opts ...RequestOption) (*TeamMembers, *RequestDetails, error)

	// Admins retrieves all administrators of a team.
	Admins(ctx context.Context, teamID string, opts ...RequestOption) (*TeamAdmins, *RequestDetails, error)

	// AddMember adds a user to a team.
	AddMember(ctx context.Context, teamID, username string, opts ...RequestOption) (*RequestDetails, error)

	// RemoveMember removes a user from a team, replacing them in schedules
	// with the replacement user.
	RemoveMember(ctx context.Context, teamID, username, replacement string, opts ...RequestOption) (*RequestDetails, error)

	// IsMember reports whether the username belongs to the team. The
	// comparison is case-insensitive; an empty or non-matching member list
	// yields false, never an error.
	IsMember(ctx context.Context, teamID, username string, opts ...RequestOption) (bool, *RequestDetails, error)
}

type teamService struct {
	transport *api.Transport
}

func newTeamService(transport *api.Transport) *teamService {
	return &teamService{transport: transport}
}

func (s *teamService) Create(ctx context.Context, team *Team, opts ...RequestOption) (*Team, *RequestDetails, error) {
	details, err := exec(ctx, s.transport, http.MethodPost, "v1/team", team, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var created Team
	if err := decodeInto(details, &created); err != nil {
		return nil, details, err
	}
	return &created, details, nil
}

func (s *teamService) Get(ctx context.Context, teamID string, opts ...RequestOption) (*Team, *RequestDetails, error) {
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/team/"+encodeSegment(teamID), nil, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var team Team
	if err := decodeInto(details, &team); err != nil {
		return nil, details, err
	}
	return &team, details, nil
}

func (s *teamService) List(ctx context.Context, opts ...RequestOption) ([]Team, *RequestDetails, error) {
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/team", nil, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	// The list endpoint returns a bare JSON array, not a wrapper object.
	var teams []Team
	if err := decodeInto(details, &teams); err != nil {
		return nil, details, err
	}
	return teams, details, nil
}

func (s *teamService) Update(ctx context.Context, team *Team, opts ...RequestOption) (*Team, *RequestDetails, error) {
	if team == nil || team.Name == nil {
		return nil, nil, &InvalidInputError{Detail: "team name is required for team update"}
	}

	details, err := exec(ctx, s.transport, http.MethodPut, "v1/team/"+encodeSegment(*team.Name), team, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var updated Team
	if err := decodeInto(details, &updated); err != nil {
		return nil, details, err
	}
	return &updated, details, nil
}

func (s *teamService) Delete(ctx context.Context, teamID string, opts ...RequestOption) (*RequestDetails, error) {
	return exec(ctx, s.transport, http.MethodDelete, "v1/team/"+encodeSegment(teamID), nil, nil, opts...)
}

func (s *teamService) Members(ctx context.Context, teamID string, opts ...RequestOption) (*TeamMembers, *RequestDetails, error) {
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/team/"+encodeSegment(teamID)+"/members", nil, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var members TeamMembers
	if err := decodeInto(details, &members); err != nil {
		return nil, details, err
	}
	return &members, details, nil
}

func (s *teamService) Admins(ctx context.Context, teamID string, opts ...RequestOption) (*TeamAdmins, *RequestDetails, error) {
	details, err := exec(ctx, s.transport, http.MethodGet, "v1/team/"+encodeSegment(teamID)+"/admins", nil, nil, opts...)
	if err != nil {
		return nil, nil, err
	}

	var admins TeamAdmins
	if err := decodeInto(details, &admins); err != nil {
		return nil, details, err
	}
	return &admins, details, nil
}

func (s *teamService) AddMember(ctx context.Context, teamID, username string, opts ...RequestOption) (*RequestDetails, error) {
	body := map[string]string{"username": username}
	return exec(ctx, s.transport, http.MethodPost, "v1/team/"+encodeSegment(teamID)+"/members", body, nil, opts...)
}

func (s *teamService) RemoveMember(ctx context.Context, teamID, username, replacement string, opts ...RequestOption) (*RequestDetails, error) {
	body := map[string]string{"replacement": replacement}
	path := "v1/team/" + encodeSegment(teamID) + "/members/" + encodeSegment(username)
	return exec(ctx, s.transport, http.MethodDelete, path, body, nil, opts...)
}

func (s *teamService) IsMember(ctx context.Context, teamID, username string, opts ...RequestOption) (bool, *RequestDetails, error) {
	members, details, err := s.Members(ctx, teamID, opts...)
	if err != nil {
		return false, details, err
	}

	for _, member := range members.Members {
		if member.Username != nil && strings.EqualFold(*member.Username, username) {
			return true, details, nil
		}
	}
	return false, details, nil
}
