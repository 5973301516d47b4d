package main

import (
	"fmt"

	"github.com/medicart/medicart-client/internal/models"
	"github.com/spf13/cobra"
)

var ordersCmd = &cobra.Command{
	Use:   "orders [id]",
	Short: "List your orders, or show one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := current.requireSession(cmd.Context()); err != nil {
			return fail(err)
		}

		if len(args) == 1 {

			order, err := current.catalog.GetOrder(cmd.Context(), args[0])
			if err != nil {
				return fail(err)
			}

			printOrder(order)

			return nil
		}

		orders, err := current.catalog.GetMyOrders(cmd.Context())
		if err != nil {
			return fail(err)
		}

		if len(orders) == 0 {
			fmt.Println("No orders yet")

			return nil
		}

		for _, order := range orders {
			fmt.Printf("  %-26s %10.2f  %-12s %s\n",
				order.ID, order.TotalAmount, order.Status, order.CreatedAt.Format("2006-01-02"))
		}

		return nil
	},
}

func printOrder(order *models.Order) {

	fmt.Printf("Order %s (%s)\n", order.ID, order.Status)
	fmt.Printf("Placed: %s\n", order.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Ship to: %s (%s)\n", order.ShippingAddress, order.PhoneNumber)
	fmt.Printf("Payment: %s\n", order.PaymentMethod)

	for _, item := range order.Items {
		fmt.Printf("  %-26s x%-3d %8.2f\n", item.MedicineID, item.Quantity, item.Price*float64(item.Quantity))
	}

	fmt.Printf("Total: %.2f\n", order.TotalAmount)
}
