package domain

// Product позиция каталога.
// Ровно один активный продукт помечен IsDefault - услуга со свободной ценой.
type Product struct {
	ID        string
	Name      string
	BasePrice float64
	IsDefault bool
	IsActive  bool
}

// Branch филиал
type Branch struct {
	ID            string
	Name          string
	Address       string
	BranchNumber  string
	EmployeeCount int
}

// Catalog справочники, нужные для сборки черновика бронирования
type Catalog struct {
	Products []Product
	Branches []Branch
}

// FindProduct ищет продукт по ID
func (c *Catalog) FindProduct(id string) (*Product, bool) {
	for i := range c.Products {
		if c.Products[i].ID == id {
			return &c.Products[i], true
		}
	}
	return nil, false
}

// HasBranch проверяет, что филиал есть в каталоге
func (c *Catalog) HasBranch(id string) bool {
	for _, b := range c.Branches {
		if b.ID == id {
			return true
		}
	}
	return false
}

// DefaultProduct возвращает продукт со свободной ценой
func (c *Catalog) DefaultProduct() (*Product, bool) {
	for i := range c.Products {
		if c.Products[i].IsDefault {
			return &c.Products[i], true
		}
	}
	return nil, false
}

// CountDefault количество продуктов с флагом IsDefault среди активных
func (c *Catalog) CountDefault() int {
	count := 0
	for _, p := range c.Products {
		if p.IsDefault && p.IsActive {
			count++
		}
	}
	return count
}
