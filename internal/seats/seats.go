package seats

import (
	"errors"
	"fmt"

	"github.com/cx-tal-miterani/bluesky-booking/shared/models"
)

const (
	Rows    = 5
	Columns = 6
	// Total is the number of seats per flight instance.
	Total = Rows * Columns
)

var (
	ErrSeatConflict = errors.New("seat already taken")
	ErrInvalidSeat  = errors.New("invalid seat code")
)

var codes = generateCodes()

func generateCodes() []string {
	out := make([]string, Total)
	for i := 0; i < Total; i++ {
		out[i] = fmt.Sprintf("%d%c", i/Columns+1, rune('A'+i%Columns))
	}
	return out
}

// Codes returns every seat code from 1A to 5F in grid order.
func Codes() []string {
	return append([]string(nil), codes...)
}

// Valid reports whether code is on the grid.
func Valid(code string) bool {
	_, _, ok := Parse(code)
	return ok
}

// Parse splits a seat code into row and column.
func Parse(code string) (int, string, bool) {
	if len(code) != 2 {
		return 0, "", false
	}
	row := int(code[0] - '0')
	col := code[1]
	if row < 1 || row > Rows || col < 'A' || col >= 'A'+Columns {
		return 0, "", false
	}
	return row, string(col), true
}

// Taken collects every seat code assigned to an order other than exceptID.
// Uniqueness is global across the list and not scoped per flight.
func Taken(orders []models.Order, exceptID string) map[string]bool {
	taken := make(map[string]bool)
	for _, o := range orders {
		if o.ID == exceptID {
			continue
		}
		for _, c := range o.Seat.Codes {
			taken[c] = true
		}
	}
	return taken
}

// Available returns the free seat codes in grid order.
func Available(orders []models.Order) []string {
	taken := Taken(orders, "")
	free := make([]string, 0, Total)
	for _, c := range codes {
		if !taken[c] {
			free = append(free, c)
		}
	}
	return free
}

// Map returns the full grid with each seat marked free or taken.
func Map(orders []models.Order) []models.Seat {
	taken := Taken(orders, "")
	grid := make([]models.Seat, 0, Total)
	for i, c := range codes {
		status := models.SeatStatusFree
		if taken[c] {
			status = models.SeatStatusTaken
		}
		grid = append(grid, models.Seat{
			Code:   c,
			Row:    i/Columns + 1,
			Column: string(rune('A' + i%Columns)),
			Status: status,
		})
	}
	return grid
}

// Assign returns a copy of order seated at code. It fails when the code is not
// on the grid or when another order in orders already holds it.
func Assign(order models.Order, code string, orders []models.Order) (models.Order, error) {
	if !Valid(code) {
		return models.Order{}, fmt.Errorf("%w: %q", ErrInvalidSeat, code)
	}
	if Taken(orders, order.ID)[code] {
		return models.Order{}, fmt.Errorf("%w: %s", ErrSeatConflict, code)
	}
	updated := order.Clone()
	updated.Seat = models.SingleSeat(code)
	return updated, nil
}
