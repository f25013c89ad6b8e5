package api

// CategoriesResponse lists the available categories in display order.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// UnitsResponse lists the units of a category in display order together
// with the pair a fresh selection should start from.
type UnitsResponse struct {
	Category    string   `json:"category"`
	Units       []string `json:"units"`
	DefaultFrom string   `json:"default_from"`
	DefaultTo   string   `json:"default_to"`
}

// ConvertRequest represents the request body for a conversion.
// Value is the raw text typed by the user and may be empty, non-numeric or
// arbitrarily long; only its numeric prefix matters.
type ConvertRequest struct {
	Category string `json:"category" validate:"required,max=64"`
	Value    string `json:"value"`
	From     string `json:"from"     validate:"required,max=64"`
	To       string `json:"to"       validate:"required,max=64"`
	Swap     bool   `json:"swap"`
}

// ConvertResponse echoes the effective request and carries the display
// string. Result is empty when Value has no numeric prefix.
type ConvertResponse struct {
	Category string `json:"category"`
	Value    string `json:"value"`
	From     string `json:"from"`
	To       string `json:"to"`
	Result   string `json:"result"`
}
