package session

import "github.com/medicart/medicart-client/internal/models"

// NavLink is one entry of the role-derived navigation data.
type NavLink struct {
	Name string
	Href string
}

// LandingRoute is where a fresh login or registration lands.
func LandingRoute(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return "/admin"
	case models.RoleSeller:
		return "/seller"
	default:
		return "/shop"
	}
}

// NavLinks returns the navigation set for a role; the empty role is the
// public (logged-out) set.
func NavLinks(role models.Role) []NavLink {
	switch role {
	case models.RoleAdmin:
		return []NavLink{
			{Name: "Dashboard", Href: "/admin"},
			{Name: "Users", Href: "/admin/users"},
			{Name: "Categories", Href: "/admin/categories"},
		}
	case models.RoleSeller:
		return []NavLink{
			{Name: "Dashboard", Href: "/seller/dashboard"},
			{Name: "Inventory", Href: "/seller/medicines"},
			{Name: "Orders", Href: "/seller/orders"},
		}
	case models.RoleCustomer:
		return []NavLink{
			{Name: "Home", Href: "/"},
			{Name: "Shop", Href: "/shop"},
			{Name: "My Orders", Href: "/orders"},
			{Name: "Profile", Href: "/profile"},
		}
	default:
		return []NavLink{
			{Name: "Home", Href: "/"},
			{Name: "Shop", Href: "/shop"},
		}
	}
}
