package http

import (
	"finance-dashboard-go/internal/models"
	"finance-dashboard-go/internal/nav"
	"finance-dashboard-go/internal/view"
)

// PageResponse is the JSON body of every page route.
type PageResponse struct {
	State     view.Phase     `json:"state"`
	Matricula string         `json:"matricula"`
	Section   string         `json:"section"`
	Sidebar   []nav.Item     `json:"sidebar"`
	Data      *view.PageData `json:"data,omitempty"`
	Listing   *Listing       `json:"listing,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// Listing is the filtered transaction table of the transactions page.
type Listing struct {
	Category string               `json:"category,omitempty"`
	Type     string               `json:"type,omitempty"`
	Count    int                  `json:"count"`
	Items    []models.Transaction `json:"items"`
}

func present(path string, ctrl *view.Controller, st view.State) *PageResponse {
	membership := ctrl.Membership()
	res := &PageResponse{
		State:     st.Phase(),
		Matricula: membership,
		Section:   ctrl.Page().Section.Key,
	}

	badges := map[string]int{}
	switch st := st.(type) {
	case view.Ready:
		res.Data = st.Data
		badges[nav.Reminders.Key] = st.Data.Pending
	case view.Failed:
		res.Error = st.Err.Error()
	case view.NotFound:
		res.Error = "no user with membership identifier " + st.Membership
	}
	res.Sidebar = nav.Sidebar(path, membership, badges)
	return res
}

// withListing attaches the controller's filtered rows when the page is Ready.
func (r *PageResponse) withListing(ctrl *view.Controller) {
	if r.Data == nil {
		return
	}
	f := ctrl.Filter()
	items := ctrl.Visible()
	r.Listing = &Listing{
		Category: f.Category,
		Type:     string(f.Type),
		Count:    len(items),
		Items:    items,
	}
}
