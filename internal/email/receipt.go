package email

import (
	"fmt"
	"strings"

	"github.com/example/coffee-pos/internal/domain/order"
)

// BuildReceiptBody renders the plain-text receipt for a placed order.
func BuildReceiptBody(placed order.Placed) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Order %s\n", placed.OrderID)
	if placed.Cashier != "" {
		fmt.Fprintf(&b, "Served by %s\n", placed.Cashier)
	}
	fmt.Fprintf(&b, "Placed at %s\n\n", placed.PlacedAt.Format("2006-01-02 15:04"))

	for _, item := range placed.Items {
		name := item.Name
		if name == "" {
			name = item.ProductID
		}
		fmt.Fprintf(&b, "%-24s x%-3d $%8.2f\n", name, item.Quantity, item.Price*float64(item.Quantity))
	}

	b.WriteString(strings.Repeat("-", 40))
	fmt.Fprintf(&b, "\n%-28s $%8.2f\n", "Total", placed.Total)
	b.WriteString("\nThank you for your visit!\n")

	return b.String()
}
