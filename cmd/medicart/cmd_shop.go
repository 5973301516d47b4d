package main

import (
	"fmt"
	"strconv"

	"github.com/medicart/medicart-client/internal/models"
	"github.com/spf13/cobra"
)

var shopCategory string

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse the medicine catalog",
	RunE: func(cmd *cobra.Command, args []string) error {

		if shopCategory != "" {

			medicines, err := current.catalog.GetMedicinesByCategory(cmd.Context(), shopCategory)
			if err != nil {
				return fail(err)
			}

			printMedicines(medicines)

			return nil
		}

		data, err := current.catalog.LoadShop(cmd.Context())
		if err != nil {
			return fail(err)
		}

		fmt.Println("Categories:")

		for _, category := range data.Categories {
			fmt.Printf("  %-24s %s\n", category.Name, category.ID)
		}

		fmt.Println()
		printMedicines(data.Medicines)

		return nil
	},
}

var medicineCmd = &cobra.Command{
	Use:   "medicine <id>",
	Short: "Show one medicine with its reviews",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		medicine, err := current.catalog.GetMedicine(cmd.Context(), args[0])
		if err != nil {
			return fail(err)
		}

		fmt.Printf("%s  %.2f\n", medicine.Name, medicine.Price)
		fmt.Printf("Manufacturer: %s  Stock: %d\n", medicine.Manufacturer, medicine.Stock)

		if medicine.Description != "" {
			fmt.Println(medicine.Description)
		}

		reviews, err := current.catalog.GetReviews(cmd.Context(), medicine.ID)
		if err != nil {
			return fail(err)
		}

		for _, review := range reviews {
			fmt.Printf("  [%d/5] %s (%s)\n", review.Rating, review.Comment, review.UserName)
		}

		return nil
	},
}

var reviewCmd = &cobra.Command{
	Use:   "review <medicine-id> <rating> [comment]",
	Short: "Leave a review",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := current.requireSession(cmd.Context()); err != nil {
			return fail(err)
		}

		rating, err := strconv.Atoi(args[1])
		if err != nil {
			return fail(fmt.Errorf("rating must be a number from 1 to 5"))
		}

		req := &models.CreateReviewRequest{MedicineID: args[0], Rating: rating}

		if len(args) == 3 {
			req.Comment = args[2]
		}

		if _, err := current.catalog.CreateReview(cmd.Context(), req); err != nil {
			return fail(err)
		}

		fmt.Println("Review submitted")

		return nil
	},
}

func printMedicines(medicines []models.Medicine) {

	fmt.Println("Medicines:")

	for _, m := range medicines {
		category := ""
		if m.Category != nil {
			category = m.Category.Name
		}

		fmt.Printf("  %-28s %8.2f  %-16s %s\n", m.Name, m.Price, category, m.ID)
	}
}

func init() {
	shopCmd.Flags().StringVar(&shopCategory, "category", "", "filter by category name")
}
