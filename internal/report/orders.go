package report

import (
	"strconv"
	"strings"

	"cinema-ticketing/internal/dto/response"

	"github.com/jedib0t/go-pretty/v6/table"
)

// NoOrders is printed for sessions nobody has booked yet.
const NoOrders = "no tickets booked yet"

// RenderOrders prints every session of every hall with its orders, one row per
// order, merging the repeated venue/hall/session cells.
func RenderOrders(r response.OrdersReport) string {
	merge := table.RowConfig{AutoMerge: true}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Venue", "Hall", "Session", "Time", "Customer", "Tickets", "Seats"}, merge)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true, WidthMax: 20},
		{Number: 2, AutoMerge: true},
		{Number: 3, AutoMerge: true},
		{Number: 4, AutoMerge: true},
	})

	for _, v := range r.Venues {
		for _, h := range v.Halls {
			for _, s := range h.Sessions {
				session := strconv.Itoa(s.SessionNumber) + ". " + s.Name
				span := s.Start + "-" + s.End
				if len(s.Orders) == 0 {
					t.AppendRow(table.Row{v.Name, h.HallNumber, session, span, NoOrders, 0, ""}, merge)
					continue
				}
				for _, o := range s.Orders {
					t.AppendRow(table.Row{v.Name, h.HallNumber, session, span, o.CustomerName, o.TotalSeats, formatSeats(o.Seats)}, merge)
				}
			}
		}
		t.AppendSeparator()
	}

	return t.Render()
}

func formatSeats(seats []response.SeatResponse) string {
	parts := make([]string, len(seats))
	for i, s := range seats {
		parts[i] = "(" + strconv.Itoa(s.Row) + ", " + strconv.Itoa(s.Column) + ")"
	}
	return strings.Join(parts, ", ")
}
