package college

// College is one catalog entry. AdmitsAfter names the class whose graduates
// the institution admits.
type College struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	AdmitsAfter string   `json:"admitsAfter"`
	Courses     []string `json:"courses"`
	Website     string   `json:"website,omitempty"`
}

const (
	TypeGovernment = "Government"
	TypePrivate    = "Private"
)

// Filter narrows a catalog listing.
type Filter struct {
	Search   string
	Location string
	Type     string
}

// FilterOptions are the distinct values present in the selected dataset,
// for populating filter controls.
type FilterOptions struct {
	Locations []string `json:"locations"`
	Types     []string `json:"types"`
}

// ListResult is a filtered catalog page.
type ListResult struct {
	Colleges []College     `json:"colleges"`
	Total    int           `json:"total"`
	Filters  FilterOptions `json:"filters"`
}
