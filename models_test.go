package victorops_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	victorops "github.com/tphakala/go-victorops"
)

func TestContactTypeEndpointNoun(t *testing.T) {
	assert.Equal(t, "phones", victorops.ContactTypePhone.EndpointNoun())
	assert.Equal(t, "emails", victorops.ContactTypeEmail.EndpointNoun())
	assert.Equal(t, "devices", victorops.ContactTypeDevice.EndpointNoun())
	assert.Equal(t, "", victorops.ContactTypeUndetermined.EndpointNoun())
}

func TestContactTypeFromNotification(t *testing.T) {
	tests := []struct {
		input string
		want  victorops.ContactType
		ok    bool
	}{
		{"push", victorops.ContactTypeDevice, true},
		{"email", victorops.ContactTypeEmail, true},
		{"phone", victorops.ContactTypePhone, true},
		{"sms", victorops.ContactTypePhone, true},
		{"unknown", victorops.ContactTypeUndetermined, false},
		{"", victorops.ContactTypeUndetermined, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := victorops.ContactTypeFromNotification(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestContactType(t *testing.T) {
	t.Run("phone number resolves to phone", func(t *testing.T) {
		contact := &victorops.Contact{
			PhoneNumber: victorops.String("555-1234"),
			Label:       victorops.String("Primary"),
		}
		assert.Equal(t, victorops.ContactTypePhone, contact.Type())
	})

	t.Run("phone wins over email", func(t *testing.T) {
		contact := &victorops.Contact{
			PhoneNumber: victorops.String("555-1234"),
			Email:       victorops.String("test@example.com"),
		}
		assert.Equal(t, victorops.ContactTypePhone, contact.Type())
	})

	t.Run("email resolves to email", func(t *testing.T) {
		contact := &victorops.Contact{
			Email: victorops.String("test@example.com"),
			Label: victorops.String("Work"),
		}
		assert.Equal(t, victorops.ContactTypeEmail, contact.Type())
	})

	t.Run("neither is undetermined", func(t *testing.T) {
		contact := &victorops.Contact{}
		assert.Equal(t, victorops.ContactTypeUndetermined, contact.Type())
	})
}

func TestUserOptionalFields(t *testing.T) {
	t.Run("absent fields decode to nil", func(t *testing.T) {
		var user victorops.User
		require.NoError(t, json.Unmarshal([]byte(`{"username":"jdoe"}`), &user))

		require.NotNil(t, user.Username)
		assert.Equal(t, "jdoe", *user.Username)
		assert.Nil(t, user.FirstName)
		assert.Nil(t, user.Admin)
		assert.Nil(t, user.Verified)
	})

	t.Run("explicit false is distinguishable from absent", func(t *testing.T) {
		var user victorops.User
		require.NoError(t, json.Unmarshal([]byte(`{"admin":false}`), &user))

		require.NotNil(t, user.Admin)
		assert.False(t, *user.Admin)
	})

	t.Run("nil fields are omitted when encoding", func(t *testing.T) {
		data, err := json.Marshal(&victorops.User{Username: victorops.String("jdoe")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"username":"jdoe"}`, string(data))
	})
}

func TestUserListNestedShape(t *testing.T) {
	// The v1 user list nests an extra list layer. The nesting must survive
	// a decode untouched; flattening is the caller's concern.
	payload := `{"users":[[{"username":"alice"},{"username":"bob"}],[{"username":"carol"}]]}`

	var list victorops.UserList
	require.NoError(t, json.Unmarshal([]byte(payload), &list))

	require.Len(t, list.Users, 2)
	require.Len(t, list.Users[0], 2)
	require.Len(t, list.Users[1], 1)
	assert.Equal(t, "carol", *list.Users[1][0].Username)
}

func TestContactGroupSerialization(t *testing.T) {
	group := victorops.ContactGroup{
		ContactMethods: []victorops.Contact{
			{
				PhoneNumber: victorops.String("555-1234"),
				Label:       victorops.String("Primary"),
				Rank:        victorops.Int(1),
			},
		},
	}

	data, err := json.Marshal(group)
	require.NoError(t, err)
	assert.Contains(t, string(data), "contactMethods")

	var decoded victorops.ContactGroup
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.ContactMethods, 1)
}
