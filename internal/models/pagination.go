package models

// PaginationData mirrors the pagination block every list endpoint returns.
// Prev and Next carry 0 as a sentinel meaning "no such page", not a literal
// page zero. Detail is the ordered window of page numbers offered as
// direct-jump controls and always contains Current. TotalData arrives as a
// string on the wire.
type PaginationData struct {
	TotalData    string `json:"total_data"`
	TotalPage    int    `json:"total_page"`
	TotalDisplay int    `json:"total_display"`
	FirstPage    bool   `json:"first_page"`
	LastPage     bool   `json:"last_page"`
	Prev         int    `json:"prev"`
	Current      int    `json:"current"`
	Next         int    `json:"next"`
	Detail       []int  `json:"detail"`
}

// HasPrev reports whether a previous page exists.
func (p *PaginationData) HasPrev() bool {
	return p != nil && p.Prev != 0
}

// HasNext reports whether a next page exists.
func (p *PaginationData) HasNext() bool {
	return p != nil && p.Next != 0
}
