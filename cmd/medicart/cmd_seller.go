package main

import (
	"fmt"

	"github.com/medicart/medicart-client/internal/models"
	"github.com/spf13/cobra"
)

var sellerCmd = &cobra.Command{
	Use:   "seller",
	Short: "Seller inventory and order management",
}

var sellerDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Seller stats and recent orders",
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := current.requireSession(cmd.Context()); err != nil {
			return fail(err)
		}

		data, err := current.catalog.LoadSellerDashboard(cmd.Context())
		if err != nil {
			return fail(err)
		}

		fmt.Printf("Medicines: %d  Orders: %d (pending %d)  Revenue: %.2f\n",
			data.Stats.TotalMedicines, data.Stats.TotalOrders, data.Stats.PendingOrders, data.Stats.Revenue)

		for _, order := range data.Orders {
			fmt.Printf("  %-26s %10.2f  %s\n", order.ID, order.TotalAmount, order.Status)
		}

		return nil
	},
}

var (
	medName         string
	medDescription  string
	medPrice        float64
	medStock        int
	medCategoryID   string
	medManufacturer string
)

var sellerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a medicine to the inventory",
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := current.requireSession(cmd.Context()); err != nil {
			return fail(err)
		}

		medicine, err := current.catalog.CreateMedicine(cmd.Context(), &models.CreateMedicineRequest{
			Name:         medName,
			Description:  medDescription,
			Price:        medPrice,
			Stock:        medStock,
			CategoryID:   medCategoryID,
			Manufacturer: medManufacturer,
		})
		if err != nil {
			return fail(err)
		}

		fmt.Printf("Added %s (%s)\n", medicine.Name, medicine.ID)

		return nil
	},
}

var sellerStockCmd = &cobra.Command{
	Use:   "stock <medicine-id> <quantity>",
	Short: "Update stock for a medicine",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := current.requireSession(cmd.Context()); err != nil {
			return fail(err)
		}

		var stock int
		if _, err := fmt.Sscanf(args[1], "%d", &stock); err != nil || stock < 0 {
			return fail(fmt.Errorf("quantity must be a non-negative number"))
		}

		medicine, err := current.catalog.UpdateMedicine(cmd.Context(), args[0], &models.UpdateMedicineRequest{
			Stock: &stock,
		})
		if err != nil {
			return fail(err)
		}

		fmt.Printf("%s stock is now %d\n", medicine.Name, medicine.Stock)

		return nil
	},
}

var sellerDeleteCmd = &cobra.Command{
	Use:   "delete <medicine-id>",
	Short: "Remove a medicine from the inventory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := current.requireSession(cmd.Context()); err != nil {
			return fail(err)
		}

		if err := current.catalog.DeleteMedicine(cmd.Context(), args[0]); err != nil {
			return fail(err)
		}

		fmt.Println("Deleted")

		return nil
	},
}

var sellerStatusCmd = &cobra.Command{
	Use:   "status <order-id> <status>",
	Short: "Request an order status transition",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := current.requireSession(cmd.Context()); err != nil {
			return fail(err)
		}

		order, err := current.catalog.UpdateOrderStatus(cmd.Context(), args[0], models.OrderStatus(args[1]))
		if err != nil {
			return fail(err)
		}

		fmt.Printf("Order %s is now %s\n", order.ID, order.Status)

		return nil
	},
}

func init() {
	sellerCmd.AddCommand(sellerDashboardCmd, sellerAddCmd, sellerStockCmd, sellerDeleteCmd, sellerStatusCmd)

	sellerAddCmd.Flags().StringVar(&medName, "name", "", "medicine name")
	sellerAddCmd.Flags().StringVar(&medDescription, "description", "", "description")
	sellerAddCmd.Flags().Float64Var(&medPrice, "price", 0, "unit price")
	sellerAddCmd.Flags().IntVar(&medStock, "stock", 0, "stock quantity")
	sellerAddCmd.Flags().StringVar(&medCategoryID, "category", "", "category id")
	sellerAddCmd.Flags().StringVar(&medManufacturer, "manufacturer", "", "manufacturer")
	sellerAddCmd.MarkFlagRequired("name")
	sellerAddCmd.MarkFlagRequired("price")
	sellerAddCmd.MarkFlagRequired("category")
	sellerAddCmd.MarkFlagRequired("manufacturer")
}
