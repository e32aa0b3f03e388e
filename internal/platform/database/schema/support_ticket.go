package schema

// SupportTicketTable represents the 'support.ticket' table
type SupportTicketTable struct {
	Table         string
	ID            string
	Code          string
	Title         string
	Priority      string
	Description   string
	ReporterName  string
	ReporterEmail string
	State         string
	CreatedAt     string
	UpdatedAt     string
}

// SupportTicket is the schema definition for support.ticket
var SupportTicket = SupportTicketTable{
	Table:         "support.ticket",
	ID:            "id",
	Code:          "code",
	Title:         "title",
	Priority:      "priority",
	Description:   "description",
	ReporterName:  "reportername",
	ReporterEmail: "reporteremail",
	State:         "state",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Columns returns all standard column names
func (t SupportTicketTable) Columns() []string {
	return []string{
		t.ID, t.Code, t.Title, t.Priority, t.Description, t.ReporterName,
		t.ReporterEmail, t.State, t.CreatedAt, t.UpdatedAt,
	}
}
