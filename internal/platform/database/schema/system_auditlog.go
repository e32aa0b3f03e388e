package schema

// SystemAuditLogTable represents the 'system.auditlog' table
type SystemAuditLogTable struct {
	Table       string
	ID          string
	Action      string
	EntityType  string
	EntityID    string
	Description string
	Metadata    string
	UserID      string
	UserName    string
	CreatedAt   string
}

var SystemAuditLog = SystemAuditLogTable{
	Table:       "system.auditlog",
	ID:          "id",
	Action:      "action",
	EntityType:  "entitytype",
	EntityID:    "entityid",
	Description: "description",
	Metadata:    "metadata",
	UserID:      "userid",
	UserName:    "username",
	CreatedAt:   "createdat",
}
