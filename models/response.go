package models

type LoginResponse struct {
	Token    string  `json:"token"`
	Employee Profile `json:"employee"`
}

type CatalogView struct {
	Products         []Product  `json:"products"`
	Categories       []Category `json:"categories"`
	SelectedCategory string     `json:"selected_category"`
	Cart             CartView   `json:"cart"`
}

type DashboardView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type ManageOrdersView struct {
	Orders   []PendingOrder `json:"orders"`
	Products []Product      `json:"products"`
}

type StoredFile struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

type FunctionResult struct {
	Name     string `json:"name,omitempty"`
	URL      string `json:"url,omitempty"`
	Location string `json:"location,omitempty"`
}
