package models

// Department is an organizational unit issues can be assigned to.
// Issue counts are never stored on the department; they are derived
// from the issue collection on every read.
type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
