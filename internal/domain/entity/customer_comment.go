package entity

// CustomerComment nota libre sobre un prospecto, con autoría.
type CustomerComment struct {
	ID         string
	CustomerID string
	AuthorID   string // usuario que escribió la nota
	Comment    string
	Lifecycle
}
