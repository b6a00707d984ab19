package darwin

// Plant counts the food units lying on one cell.
type Plant struct {
	amount uint32
}

// Increase adds one unit of food.
func (p *Plant) Increase() {
	p.amount++
}

// Decrease removes one unit of food. It does nothing on an empty cell.
func (p *Plant) Decrease() {
	if p.amount > 0 {
		p.amount--
	}
}

// Amount returns the number of food units on the cell.
func (p *Plant) Amount() uint32 {
	return p.amount
}
