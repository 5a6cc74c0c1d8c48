package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profile-backend/internal/profile/domain"
)

type sampleEntity struct {
	Name      string
	Kind      string
	Count     int
	Enabled   bool
	Note      *string
	SeenAt    *time.Time
	CreatedAt *time.Time
	UpdatedAt *time.Time
	IsActive  bool
	Username  string
	DeviceID  *uint
	Payload   []byte
}

func TestGenerateColumnTypes(t *testing.T) {
	ts, err := Generate("Sample", sampleEntity{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, "sample", ts.Table)

	name := ts.Column("name")
	require.NotNil(t, name)
	assert.Equal(t, TypeString, name.Type)
	assert.Equal(t, 255, name.MaxLength, "allow-listed string keeps the full bound")
	assert.False(t, name.Nullable)

	kind := ts.Column("kind")
	require.NotNil(t, kind)
	assert.Equal(t, 100, kind.MaxLength, "unrecognized string narrows to 100")

	count := ts.Column("count")
	require.NotNil(t, count)
	assert.Equal(t, TypeInteger, count.Type)

	enabled := ts.Column("enabled")
	require.NotNil(t, enabled)
	assert.Equal(t, TypeBoolean, enabled.Type)
	assert.Equal(t, false, enabled.Default)
}

func TestGenerateNullability(t *testing.T) {
	ts, err := Generate("Sample", sampleEntity{}, Options{})
	require.NoError(t, err)

	// Pointer-typed fields become nullable, value-typed fields do not.
	require.NotNil(t, ts.Column("note"))
	assert.True(t, ts.Column("note").Nullable)
	require.NotNil(t, ts.Column("seen_at"))
	assert.True(t, ts.Column("seen_at").Nullable)
	assert.Equal(t, TypeTimestamp, ts.Column("seen_at").Type)

	assert.False(t, ts.Column("name").Nullable)
	assert.False(t, ts.Column("enabled").Nullable)
}

func TestGenerateReservedFields(t *testing.T) {
	ts, err := Generate("Sample", sampleEntity{}, Options{})
	require.NoError(t, err)

	created := ts.Column("created_at")
	require.NotNil(t, created)
	assert.True(t, created.AutoNowAdd)
	assert.False(t, created.AutoNow)

	updated := ts.Column("updated_at")
	require.NotNil(t, updated)
	assert.True(t, updated.AutoNow)

	active := ts.Column("is_active")
	require.NotNil(t, active)
	assert.Equal(t, TypeBoolean, active.Type)
	assert.Equal(t, true, active.Default, "active flag defaults to true, not the boolean default")
}

func TestGenerateExcludesDerivedFields(t *testing.T) {
	ts, err := Generate("Sample", sampleEntity{}, Options{})
	require.NoError(t, err)

	assert.Nil(t, ts.Column("device_id"), "derived identity is computed by the mapper")
	assert.Nil(t, ts.Column("username"), "owner name is resolved through the relation")
}

func TestGenerateUnknownTypeFallsBack(t *testing.T) {
	ts, err := Generate("Sample", sampleEntity{}, Options{})
	require.NoError(t, err)

	payload := ts.Column("payload")
	require.NotNil(t, payload, "unknown field types widen to a generic bounded string")
	assert.Equal(t, TypeString, payload.Type)
	assert.Equal(t, 255, payload.MaxLength)
}

func TestGenerateMergesCallerOptions(t *testing.T) {
	ts, err := Generate("Sample", sampleEntity{}, Options{
		Columns: []ColumnSpec{
			{Name: "kind", Type: TypeString, MaxLength: 255, Unique: true},
			{Name: "user_id", Type: TypeForeignKey, References: "users", OnDelete: Cascade},
		},
		UniqueTogether: [][]string{{"name", "user_id"}},
		Ordering:       []string{"-created_at"},
	})
	require.NoError(t, err)

	kind := ts.Column("kind")
	require.NotNil(t, kind)
	assert.Equal(t, 255, kind.MaxLength, "caller-supplied values are never overridden")
	assert.True(t, kind.Unique)

	fk := ts.Column("user_id")
	require.NotNil(t, fk)
	assert.Equal(t, TypeForeignKey, fk.Type)
	assert.Equal(t, "users", fk.References)
	assert.Equal(t, Cascade, fk.OnDelete)

	assert.Equal(t, [][]string{{"name", "user_id"}}, ts.UniqueTogether)
	assert.Equal(t, []string{"-created_at"}, ts.Ordering)
}

func TestGenerateRejectsNonStruct(t *testing.T) {
	_, err := Generate("Bad", 42, Options{})
	assert.Error(t, err)
}

func TestRegistryIdempotent(t *testing.T) {
	reg := NewRegistry()

	first, err := reg.Register("Sample", sampleEntity{}, Options{})
	require.NoError(t, err)

	// Registering again must return the cached definition, not regenerate.
	second, err := reg.Register("Sample", sampleEntity{}, Options{Ordering: []string{"-created_at"}})
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Empty(t, second.Ordering)

	got, err := reg.Get("Sample")
	require.NoError(t, err)
	assert.Same(t, first, got)

	_, err = reg.Get("Missing")
	assert.Error(t, err)
}

func TestRegisterProfileSchemas(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, RegisterProfileSchemas(reg))
	assert.Equal(t, []string{"Device", "Session"}, reg.Names())

	device, err := reg.Get("Device")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"name", "user_id"}}, device.UniqueTogether)
	require.NotNil(t, device.Column("user_id"))
	assert.Equal(t, Cascade, device.Column("user_id").OnDelete)
	assert.Nil(t, device.Column("device_id"))
	assert.Nil(t, device.Column("username"))

	session, err := reg.Get("Session")
	require.NoError(t, err)
	token := session.Column("session_token")
	require.NotNil(t, token)
	assert.True(t, token.Unique)
	assert.Equal(t, 255, token.MaxLength)
	require.NotNil(t, session.Column("device_id"))
	assert.Equal(t, SetNull, session.Column("device_id").OnDelete)
	assert.True(t, session.Column("device_id").Nullable)
	assert.Nil(t, session.Column("device_name"))
	assert.Nil(t, session.Column("session_id"))

	// ip_address and user_agent narrow to 100 like any unlisted string.
	assert.Equal(t, 100, session.Column("ip_address").MaxLength)
	assert.True(t, session.Column("ip_address").Nullable)
}

func TestColumnNameDerivation(t *testing.T) {
	type odd struct {
		IPAddress    string
		DeviceType   string
		LastActivity *time.Time
	}
	ts, err := Generate("Odd", odd{}, Options{})
	require.NoError(t, err)
	assert.NotNil(t, ts.Column("ip_address"))
	assert.NotNil(t, ts.Column("device_type"))
	assert.NotNil(t, ts.Column("last_activity"))
}

func TestGenerateFromDomainEntities(t *testing.T) {
	ts, err := Generate("Device", domain.DeviceEntity{}, Options{})
	require.NoError(t, err)

	// The entity's store-facing fields all generate; mapper-only fields
	// stay out.
	for _, col := range []string{"name", "device_type", "platform", "is_active", "created_at", "updated_at"} {
		assert.NotNil(t, ts.Column(col), col)
	}
	assert.Len(t, ts.Columns, 6)
}
