package main

import (
	"fmt"
	"strconv"

	"github.com/medicart/medicart-client/internal/checkout"
	"github.com/medicart/medicart-client/internal/models"
	"github.com/spf13/cobra"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage your cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showCart(cmd)
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <medicine-id> [quantity]",
	Short: "Add a medicine to the cart",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := loadCart(cmd); err != nil {
			return fail(err)
		}

		quantity := 1

		if len(args) == 2 {
			q, err := strconv.Atoi(args[1])
			if err != nil || q < 1 {
				return fail(fmt.Errorf("quantity must be a positive number"))
			}

			quantity = q
		}

		medicine, err := current.catalog.GetMedicine(cmd.Context(), args[0])
		if err != nil {
			return fail(err)
		}

		if err := current.cart.Add(cmd.Context(), medicine, quantity); err != nil {
			return fail(err)
		}

		return showCart(cmd)
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <item-id>",
	Short: "Remove a cart item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := loadCart(cmd); err != nil {
			return fail(err)
		}

		if err := current.cart.Remove(cmd.Context(), args[0]); err != nil {
			return fail(err)
		}

		return showCart(cmd)
	},
}

var cartIncCmd = &cobra.Command{
	Use:   "inc <item-id>",
	Short: "Increase a cart item's quantity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := loadCart(cmd); err != nil {
			return fail(err)
		}

		if err := current.cart.IncrementQuantity(cmd.Context(), args[0]); err != nil {
			return fail(err)
		}

		return showCart(cmd)
	},
}

var cartDecCmd = &cobra.Command{
	Use:   "dec <item-id>",
	Short: "Decrease a cart item's quantity (floor 1)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := loadCart(cmd); err != nil {
			return fail(err)
		}

		if err := current.cart.DecrementQuantity(cmd.Context(), args[0]); err != nil {
			return fail(err)
		}

		return showCart(cmd)
	},
}

var (
	shipName    string
	shipAddress string
	shipCity    string
	shipPhone   string
	payMethod   string
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order from the current cart",
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := loadCart(cmd); err != nil {
			return fail(err)
		}

		wizard := checkout.NewWizard(current.catalog, current.cart)

		// Step 1: shipping details.
		err := wizard.SubmitShipping(models.ShippingDetails{
			FullName: shipName,
			Address:  shipAddress,
			City:     shipCity,
			Phone:    shipPhone,
		})
		if err != nil {
			return fail(err)
		}

		// Step 2: payment method, then submit.
		if err := wizard.SelectPayment(models.PaymentMethod(payMethod)); err != nil {
			return fail(err)
		}

		summary := wizard.Summary()
		fmt.Printf("Subtotal %.2f  Shipping %.2f  Total %.2f\n",
			summary.Subtotal, summary.Shipping, summary.Total)

		order, route, err := wizard.PlaceOrder(cmd.Context())
		if err != nil {
			return fail(err)
		}

		fmt.Printf("Order %s placed, total %.2f (%s)\n", order.ID, order.TotalAmount, order.Status)
		fmt.Printf("Confirmation: %s\n", route)

		return nil
	},
}

func loadCart(cmd *cobra.Command) error {

	if err := current.requireSession(cmd.Context()); err != nil {
		return err
	}

	return current.cart.Load(cmd.Context())
}

func showCart(cmd *cobra.Command) error {

	if err := loadCart(cmd); err != nil {
		return fail(err)
	}

	items := current.cart.Items()

	if len(items) == 0 {
		fmt.Println("Your cart is empty")

		return nil
	}

	for _, item := range items {
		name := item.MedicineID
		if item.Medicine != nil {
			name = item.Medicine.Name
		}

		fmt.Printf("  %-28s x%-3d %8.2f  %s\n", name, item.Quantity, item.LineTotal(), item.ID)
	}

	summary := current.cart.Summary()
	fmt.Printf("Subtotal %.2f  Shipping %.2f  Total %.2f\n",
		summary.Subtotal, summary.Shipping, summary.Total)

	return nil
}

func init() {
	cartCmd.AddCommand(cartAddCmd, cartRemoveCmd, cartIncCmd, cartDecCmd)

	checkoutCmd.Flags().StringVar(&shipName, "name", "", "recipient full name")
	checkoutCmd.Flags().StringVar(&shipAddress, "address", "", "street address")
	checkoutCmd.Flags().StringVar(&shipCity, "city", "", "city")
	checkoutCmd.Flags().StringVar(&shipPhone, "phone", "", "contact phone")
	checkoutCmd.Flags().StringVar(&payMethod, "payment", string(models.PaymentCOD), "payment method")
}
