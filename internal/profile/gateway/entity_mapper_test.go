package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profile-backend/internal/profile/domain"
	"profile-backend/internal/profile/record"
)

func TestValuesFromEntitySkipsDerivedAndUnset(t *testing.T) {
	id := uint(4)
	entity := &domain.DeviceEntity{
		DeviceID:   &id,
		Name:       "Pixel 8",
		DeviceType: "phone",
		Platform:   "android",
		Username:   "alice",
		IsActive:   true,
	}

	values := ValuesFromEntity(entity)

	assert.Equal(t, "Pixel 8", values["name"])
	assert.Equal(t, "phone", values["device_type"])
	assert.Equal(t, "android", values["platform"])
	assert.Equal(t, true, values["is_active"])

	// Derived identity and resolved owner never reach the store.
	assert.NotContains(t, values, "device_id")
	assert.NotContains(t, values, "username")

	// Unset optional timestamps are skipped, not written as zero.
	assert.NotContains(t, values, "created_at")
	assert.NotContains(t, values, "updated_at")
}

func TestValuesFromEntityDereferencesOptionals(t *testing.T) {
	now := time.Now()
	ip := "10.0.0.1"
	entity := &domain.SessionEntity{
		SessionToken: "tok-1",
		Username:     "alice",
		IPAddress:    &ip,
		IsActive:     true,
		LastActivity: &now,
	}

	values := ValuesFromEntity(entity)

	assert.Equal(t, "tok-1", values["session_token"])
	assert.Equal(t, ip, values["ip_address"])
	assert.Equal(t, now, values["last_activity"])
	assert.NotContains(t, values, "user_agent")
	assert.NotContains(t, values, "session_id")
	assert.NotContains(t, values, "device_name")
}

// The reflective pass must agree with the hand-written gateway on every
// field for the same persisted row.
func TestEntityFromRecordMatchesGateway(t *testing.T) {
	db := openTestDB(t)
	owner := createUser(t, db, "alice")
	rec := &record.Device{Name: "Pixel 8", DeviceType: "phone", Platform: "android", UserID: owner.ID, IsActive: true}
	require.NoError(t, db.Create(rec).Error)
	require.NoError(t, db.First(rec, rec.ID).Error)

	var reflective domain.DeviceEntity
	require.NoError(t, EntityFromRecord(rec, &reflective, owner.Username))

	handWritten, err := DeviceRecordToEntity(db, rec)
	require.NoError(t, err)

	assert.Equal(t, *handWritten, reflective)
}

func TestEntityFromRecordSession(t *testing.T) {
	now := time.Now()
	agent := "Mozilla/5.0"
	rec := &record.Session{
		ID:           9,
		SessionToken: "tok-1",
		UserID:       3,
		UserAgent:    &agent,
		IsActive:     true,
		CreatedAt:    now,
		LastActivity: &now,
	}

	var entity domain.SessionEntity
	require.NoError(t, EntityFromRecord(rec, &entity, "alice"))

	require.NotNil(t, entity.SessionID)
	assert.Equal(t, uint(9), *entity.SessionID, "primary key lands in the derived identity field")
	assert.Equal(t, "alice", entity.Username)
	assert.Equal(t, "tok-1", entity.SessionToken)
	require.NotNil(t, entity.UserAgent)
	assert.Equal(t, agent, *entity.UserAgent)
	require.NotNil(t, entity.CreatedAt)
	assert.True(t, entity.CreatedAt.Equal(now))
	assert.Nil(t, entity.DeviceName, "relation names are resolved by the gateway, not the naive pass")
	assert.Nil(t, entity.IPAddress)
}

func TestEntityFromRecordRejectsNonPointer(t *testing.T) {
	err := EntityFromRecord(&record.Device{}, domain.DeviceEntity{}, "alice")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFieldColumnAcronyms(t *testing.T) {
	cases := map[string]string{
		"IPAddress":    "ip_address",
		"DeviceID":     "device_id",
		"SessionToken": "session_token",
		"Name":         "name",
		"UserAgent":    "user_agent",
	}
	for in, want := range cases {
		assert.Equal(t, want, fieldColumn(in), in)
	}
}
