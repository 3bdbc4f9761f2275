package domain

// NavItem пункт навигации дашборда
type NavItem struct {
	Label string
	Href  string
}

var adminNavigation = []NavItem{
	{Label: "Dashboard", Href: "/dashboard"},
	{Label: "Staff", Href: "/dashboard/staff"},
	{Label: "Branches", Href: "/dashboard/branches"},
	{Label: "Products", Href: "/dashboard/products"},
	{Label: "Bookings", Href: "/dashboard/bookings"},
	{Label: "Birthdays", Href: "/dashboard/birthdays"},
	{Label: "Customers", Href: "/dashboard/customers"},
	{Label: "Marketing", Href: "/dashboard/marketing"},
	{Label: "Settings", Href: "/dashboard/settings"},
}

var staffNavigation = []NavItem{
	{Label: "Dashboard", Href: "/dashboard"},
	{Label: "Bookings", Href: "/dashboard/bookings"},
	{Label: "Birthdays", Href: "/dashboard/birthdays"},
}

// NavigationFor возвращает пункты меню, доступные роли
func NavigationFor(role Role) []NavItem {
	src := staffNavigation
	if role == RoleAdmin {
		src = adminNavigation
	}
	items := make([]NavItem, len(src))
	copy(items, src)
	return items
}
