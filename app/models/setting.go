package models

// Setting is a generic key/value configuration row (monthly_fee,
// yearly_license). Values are strings; numeric validation happens on read.
type Setting struct {
	ID          string  `json:"id"`
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Description *string `json:"description,omitempty"`
}
