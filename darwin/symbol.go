package darwin

// Symbol is the content of one cell of the display buffer.
type Symbol byte

// Display buffer symbols.
const (
	Blank        Symbol = ' '
	PlantMarker  Symbol = 'P'
	AnimalMarker Symbol = 'A'
)

func (s Symbol) String() string {
	return string(rune(s))
}

// newField allocates a blank height x width display buffer indexed [y][x].
func newField(width, height uint32) [][]Symbol {
	field := make([][]Symbol, height)
	for y := range field {
		row := make([]Symbol, width)
		for x := range row {
			row[x] = Blank
		}
		field[y] = row
	}
	return field
}
