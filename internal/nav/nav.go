// Package nav resolves which dashboard section a path belongs to.
package nav

import (
	"strings"
	"sync"
)

// Root is the path prefix every membership's dashboard lives under.
const Root = "/painel"

type Section struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Suffix string `json:"-"` // appended to the membership root; empty for the dashboard itself
}

var (
	Dashboard    = Section{Key: "dashboard", Title: "Dashboard"}
	Transactions = Section{Key: "transacoes", Title: "Transações", Suffix: "/transacoes"}
	Cards        = Section{Key: "cartoes", Title: "Cartões de Crédito", Suffix: "/cartoes"}
	Reminders    = Section{Key: "lembretes", Title: "Lembretes", Suffix: "/lembretes"}
	Goals        = Section{Key: "metas", Title: "Metas Financeiras", Suffix: "/metas"}
	Reports      = Section{Key: "relatorios", Title: "Relatórios", Suffix: "/relatorios"}
	Settings     = Section{Key: "configuracoes", Title: "Configurações", Suffix: "/configuracoes"}
	Support      = Section{Key: "suporte", Title: "Suporte", Suffix: "/suporte"}
)

// Sections is the fixed sidebar order.
var Sections = []Section{Dashboard, Transactions, Cards, Reminders, Goals, Reports, Settings, Support}

// MembershipRoot returns the dashboard path for membership.
func MembershipRoot(membership string) string {
	return Root + "/" + membership
}

// Path resolves the section's path for membership.
func (s Section) Path(membership string) string {
	return MembershipRoot(membership) + s.Suffix
}

// IsActive reports whether path selects s. The dashboard root only matches
// exactly, otherwise it would light up for every sub-section too. Other
// sections match exactly or as a path-segment prefix.
func IsActive(s Section, path, membership string) bool {
	if membership == "" {
		return false
	}
	path = clean(path)
	target := s.Path(membership)
	if path == target {
		return true
	}
	if s.Suffix == "" {
		return false
	}
	return strings.HasPrefix(path, target+"/")
}

// Active returns the first section path selects.
func Active(path, membership string) (Section, bool) {
	for _, s := range Sections {
		if IsActive(s, path, membership) {
			return s, true
		}
	}
	return Section{}, false
}

type Item struct {
	Section
	Path   string `json:"path"`
	Active bool   `json:"active"`
	Badge  int    `json:"badge,omitempty"`
}

// Sidebar lists every section for membership in order. badges is keyed by
// Section.Key; zero counts are omitted.
func Sidebar(path, membership string, badges map[string]int) []Item {
	items := make([]Item, 0, len(Sections))
	for _, s := range Sections {
		items = append(items, Item{
			Section: s,
			Path:    s.Path(membership),
			Active:  IsActive(s, path, membership),
			Badge:   badges[s.Key],
		})
	}
	return items
}

// MembershipFromPath extracts the identifier from /painel/{membership}/...
func MembershipFromPath(path string) (string, bool) {
	rest, ok := strings.CutPrefix(clean(path), Root+"/")
	if !ok {
		return "", false
	}
	membership, _, _ := strings.Cut(rest, "/")
	if strings.TrimSpace(membership) == "" {
		return "", false
	}
	return membership, true
}

func clean(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// Panel holds the sidebar's collapsed flag.
type Panel struct {
	mu        sync.Mutex
	collapsed bool
}

func (p *Panel) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.collapsed = !p.collapsed
	return p.collapsed
}

func (p *Panel) Collapse() {
	p.mu.Lock()
	p.collapsed = true
	p.mu.Unlock()
}

func (p *Panel) Collapsed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.collapsed
}
