package cli

import (
	"fmt"
	"strings"

	"github.com/wingworks/catering-configurator-backend/internal/infrastructure/storage"
)

// PrintHeader prints the report header
func PrintHeader(dbPath string) {
	fmt.Println("CATERING ORDERS REPORT")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Database: %s\n\n", dbPath)
}

// PrintStats prints aggregate order statistics
func PrintStats(stats *storage.Stats) {
	fmt.Println("OVERALL STATISTICS")
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("Orders:  %d\n", stats.TotalOrders)
	fmt.Printf("Boxes:   %d\n", stats.TotalBoxes)
	fmt.Printf("Revenue: $%s\n\n", stats.Revenue)
}

// PrintOrders prints one line per order, newest first
func PrintOrders(orders []*storage.OrderRecord) {
	if len(orders) == 0 {
		fmt.Println("No orders found.")
		return
	}

	fmt.Println("RECENT ORDERS")
	fmt.Println(strings.Repeat("-", 40))
	for _, o := range orders {
		fmt.Printf("%s  %s  %2d x %d pieces  $%s  [%s]\n",
			o.CreatedAt.Format("2006-01-02 15:04"),
			o.ID,
			o.BoxCount,
			o.PiecesPerBox,
			o.Total,
			o.Status)
	}
}
