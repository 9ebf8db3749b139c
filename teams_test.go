package victorops_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	victorops "github.com/tphakala/go-victorops"
)

func TestTeamService_Get(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api-public/v1/team/team-abc123", r.URL.Path)

		_, err := w.Write([]byte(`{"name": "Ops", "slug": "team-abc123", "memberCount": 4}`))
		assert.NoError(t, err)
	})

	team, details, err := client.Teams.Get(context.Background(), "team-abc123")
	require.NoError(t, err)
	assert.Equal(t, "Ops", *team.Name)
	assert.Equal(t, 4, *team.MemberCount)
	assert.Equal(t, 200, details.StatusCode)
}

func TestTeamService_List(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api-public/v1/team", r.URL.Path)

		// The team list endpoint returns a bare array.
		_, err := w.Write([]byte(`[{"name": "Ops"}, {"name": "Dev", "isDefaultTeam": true}]`))
		assert.NoError(t, err)
	})

	teams, _, err := client.Teams.List(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Ops", *teams[0].Name)
	require.NotNil(t, teams[1].IsDefaultTeam)
	assert.True(t, *teams[1].IsDefaultTeam)
}

func TestTeamService_Update(t *testing.T) {
	t.Run("team name is the path segment", func(t *testing.T) {
		var escapedPath string
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			escapedPath = r.URL.EscapedPath()

			_, err := w.Write([]byte(`{"name": "On Call Ops", "slug": "team-abc123"}`))
			assert.NoError(t, err)
		})

		team, _, err := client.Teams.Update(context.Background(), &victorops.Team{
			Name: victorops.String("On Call Ops"),
		})
		require.NoError(t, err)
		assert.Equal(t, "/api-public/v1/team/On+Call+Ops", escapedPath)
		assert.Equal(t, "team-abc123", *team.Slug)
	})

	t.Run("missing name fails before any network call", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("should not make API call without team name")
		})

		_, _, err := client.Teams.Update(context.Background(), &victorops.Team{
			Slug: victorops.String("team-abc123"),
		})
		require.Error(t, err)

		var inputErr *victorops.InvalidInputError
		require.ErrorAs(t, err, &inputErr)
		assert.Contains(t, inputErr.Detail, "team name")
	})
}

func TestTeamService_AddMember(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api-public/v1/team/team-abc123/members", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"username": "jdoe"}`, string(body))

		w.WriteHeader(http.StatusOK)
	})

	_, err := client.Teams.AddMember(context.Background(), "team-abc123", "jdoe")
	require.NoError(t, err)
}

func TestTeamService_RemoveMember(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api-public/v1/team/team-abc123/members/test%40example.com", r.URL.EscapedPath())

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"replacement": "jdoe"}`, string(body))

		w.WriteHeader(http.StatusOK)
	})

	_, err := client.Teams.RemoveMember(context.Background(), "team-abc123", "test@example.com", "jdoe")
	require.NoError(t, err)
}

func TestTeamService_IsMember(t *testing.T) {
	memberList := `{"members": [{"username": "Alice"}, {"username": "bob"}]}`

	t.Run("match is case-insensitive", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api-public/v1/team/team-abc123/members", r.URL.Path)
			_, err := w.Write([]byte(memberList))
			assert.NoError(t, err)
		})

		found, details, err := client.Teams.IsMember(context.Background(), "team-abc123", "ALICE")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 200, details.StatusCode)
	})

	t.Run("no match is false, not an error", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(memberList))
			assert.NoError(t, err)
		})

		found, _, err := client.Teams.IsMember(context.Background(), "team-abc123", "carol")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("empty member list is false, not an error", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(`{"members": []}`))
			assert.NoError(t, err)
		})

		found, _, err := client.Teams.IsMember(context.Background(), "team-abc123", "alice")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestTeamService_Admins(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api-public/v1/team/team-abc123/admins", r.URL.Path)

		_, err := w.Write([]byte(`{"admin": [{"username": "alice", "firstName": "Alice"}]}`))
		assert.NoError(t, err)
	})

	admins, _, err := client.Teams.Admins(context.Background(), "team-abc123")
	require.NoError(t, err)
	require.Len(t, admins.Admin, 1)
	assert.Equal(t, "alice", *admins.Admin[0].Username)
}

func TestTeamService_Delete(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api-public/v1/team/team-abc123", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	details, err := client.Teams.Delete(context.Background(), "team-abc123")
	require.NoError(t, err)
	assert.Equal(t, 200, details.StatusCode)
}
