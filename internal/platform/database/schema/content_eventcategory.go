package schema

// ContentEventCategoryTable represents the 'content.eventcategory' table
type ContentEventCategoryTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
}

var ContentEventCategory = ContentEventCategoryTable{
	Table:     "content.eventcategory",
	ID:        "id",
	Name:      "name",
	CreatedAt: "createdat",
}
