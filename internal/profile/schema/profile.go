package schema

import "profile-backend/internal/profile/domain"

// RegisterProfileSchemas populates the registry with the Device and Session
// definitions. The owner and device relations are not entity fields (the
// entities carry resolved names instead), so they are supplied here and
// merged after the automatic pass, along with schema-level options.
func RegisterProfileSchemas(reg *Registry) error {
	if _, err := reg.Register("Device", domain.DeviceEntity{}, Options{
		Columns: []ColumnSpec{
			{Name: "user_id", Type: TypeForeignKey, References: "users", OnDelete: Cascade},
		},
		UniqueTogether: [][]string{{"name", "user_id"}},
		Ordering:       []string{"-created_at"},
	}); err != nil {
		return err
	}

	if _, err := reg.Register("Session", domain.SessionEntity{}, Options{
		Columns: []ColumnSpec{
			// session_token keeps the full bound and the store-level
			// uniqueness guarantee.
			{Name: "session_token", Type: TypeString, MaxLength: 255, Unique: true},
			{Name: "user_id", Type: TypeForeignKey, References: "users", OnDelete: Cascade},
			{Name: "device_id", Type: TypeForeignKey, References: "device", OnDelete: SetNull, Nullable: true},
		},
		Ordering: []string{"-last_activity"},
	}); err != nil {
		return err
	}

	return nil
}
