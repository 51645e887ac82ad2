package models

type Brand struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Slug       string   `json:"slug"`
	Color      string   `json:"color"`
	SheetID    string   `json:"sheetId"`
	Instagram  string   `json:"instagram"`
	LogoURL    string   `json:"logoUrl"`
	Categories []string `json:"categories"`
}
