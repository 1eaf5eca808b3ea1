// Command statsreport prints a restaurant's dashboard statistics to the
// terminal, for quick checks without the web dashboard.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/olekukonko/tablewriter"

	"tableside/configs"
	"tableside/repository"
	"tableside/services"
)

func main() {
	restaurantID := flag.Uint("restaurant", 0, "restaurant ID to report on")
	flag.Parse()

	if *restaurantID == 0 {
		log.Fatal("missing -restaurant flag")
	}

	cfg := configs.LoadConfig()
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatalf("failed to connect: %v", err)
	}

	repo := repository.NewOrderRepository(configs.DB())
	stats, err := services.NewStatisticsService(repo).Calculate(uint(*restaurantID))
	if err != nil {
		log.Fatalf("failed to calculate statistics: %v", err)
	}

	summary := tablewriter.NewWriter(os.Stdout)
	summary.Header("Metric", "Value")
	summary.Append([]string{"Orders today", fmt.Sprint(stats.TotalOrdersToday)})
	summary.Append([]string{"Revenue today", fmt.Sprint(stats.TotalRevenueToday)})
	summary.Append([]string{"Avg preparation (min)", fmt.Sprintf("%.1f", stats.AveragePreparationTimeMinutes)})
	summary.Render()

	if len(stats.MostOrderedProducts) > 0 {
		top := tablewriter.NewWriter(os.Stdout)
		top.Header("Product", "Quantity")
		for _, p := range stats.MostOrderedProducts {
			top.Append([]string{p.Name, fmt.Sprint(p.Quantity)})
		}
		top.Render()
	}

	if len(stats.OrdersByTable) > 0 {
		tables := tablewriter.NewWriter(os.Stdout)
		tables.Header("Table", "Orders", "Revenue")
		for _, t := range stats.OrdersByTable {
			tables.Append([]string{fmt.Sprint(t.TableID), fmt.Sprint(t.Count), fmt.Sprint(t.Revenue)})
		}
		tables.Render()
	}

	if len(stats.OrdersByStatus) > 0 {
		statuses := tablewriter.NewWriter(os.Stdout)
		statuses.Header("Status", "Orders")
		for status, n := range stats.OrdersByStatus {
			statuses.Append([]string{status, fmt.Sprint(n)})
		}
		statuses.Render()
	}
}
