package models

import "encoding/json"

// Order represents a purchase order document. Items is an opaque line-item
// payload: it is stored and returned verbatim and validated only for
// presence. UserID is not enforced as a foreign key; orders may reference
// accounts that no longer exist.
type Order struct {
	ID       int64           `json:"id"`
	UserID   FlexID          `json:"userId"`
	UserName string          `json:"userName"`
	Items    json.RawMessage `json:"items"`
	Total    float64         `json:"total"`
	Address  string          `json:"address"`
	Status   string          `json:"status"`
	Date     string          `json:"date"`
	Time     string          `json:"time"`
}
