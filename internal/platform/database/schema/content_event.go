package schema

// ContentEventTable represents the 'content.event' table
type ContentEventTable struct {
	Table        string
	ID           string
	Name         string
	Slug         string
	Image        string
	Date         string
	Venue        string
	EventDays    string
	ShowTime     string
	AudienceType string
	Price        string
	State        string
	LinkURL      string
	CategoryID   string
	CreatedAt    string
	UpdatedAt    string
}

// ContentEvent is the schema definition for content.event
var ContentEvent = ContentEventTable{
	Table:        "content.event",
	ID:           "id",
	Name:         "name",
	Slug:         "slug",
	Image:        "image",
	Date:         "date",
	Venue:        "venue",
	EventDays:    "eventdays",
	ShowTime:     "showtime",
	AudienceType: "audiencetype",
	Price:        "price",
	State:        "state",
	LinkURL:      "linkurl",
	CategoryID:   "categoryid",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t ContentEventTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Slug, t.Image, t.Date, t.Venue, t.EventDays, t.ShowTime,
		t.AudienceType, t.Price, t.State, t.LinkURL, t.CategoryID, t.CreatedAt, t.UpdatedAt,
	}
}
