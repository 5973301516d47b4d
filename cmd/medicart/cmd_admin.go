package main

import (
	"fmt"

	"github.com/medicart/medicart-client/internal/models"
	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Admin user and category management",
}

var adminDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Platform stats and user list",
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := current.requireSession(cmd.Context()); err != nil {
			return fail(err)
		}

		data, err := current.catalog.LoadAdminDashboard(cmd.Context())
		if err != nil {
			return fail(err)
		}

		fmt.Printf("Users: %d (sellers %d)  Orders: %d  Revenue: %.2f\n",
			data.Stats.TotalUsers, data.Stats.TotalSellers, data.Stats.TotalOrders, data.Stats.TotalRevenue)

		for _, user := range data.Users {
			fmt.Printf("  %-24s %-28s %-9s %s\n", user.Name, user.Email, user.Role, user.Status)
		}

		return nil
	},
}

var (
	roleValue   string
	statusValue string
)

var adminRoleCmd = &cobra.Command{
	Use:   "role <user-id>",
	Short: "Change a user's role or status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := current.requireSession(cmd.Context()); err != nil {
			return fail(err)
		}

		user, err := current.catalog.UpdateUserRole(cmd.Context(), args[0], &models.UpdateRoleRequest{
			Role:   models.Role(roleValue),
			Status: models.UserStatus(statusValue),
		})
		if err != nil {
			return fail(err)
		}

		fmt.Printf("%s is now %s (%s)\n", user.Name, user.Role, user.Status)

		return nil
	},
}

var adminCategoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
	RunE: func(cmd *cobra.Command, args []string) error {

		categories, err := current.catalog.GetAllCategories(cmd.Context())
		if err != nil {
			return fail(err)
		}

		for _, category := range categories {
			fmt.Printf("  %-24s %s\n", category.Name, category.ID)
		}

		return nil
	},
}

var adminCategoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := current.requireSession(cmd.Context()); err != nil {
			return fail(err)
		}

		category, err := current.catalog.CreateCategory(cmd.Context(), args[0])
		if err != nil {
			return fail(err)
		}

		fmt.Printf("Created %s (%s)\n", category.Name, category.ID)

		return nil
	},
}

var adminCategoryRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := current.requireSession(cmd.Context()); err != nil {
			return fail(err)
		}

		category, err := current.catalog.UpdateCategory(cmd.Context(), args[0], args[1])
		if err != nil {
			return fail(err)
		}

		fmt.Printf("Renamed to %s\n", category.Name)

		return nil
	},
}

var adminCategoryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := current.requireSession(cmd.Context()); err != nil {
			return fail(err)
		}

		if err := current.catalog.DeleteCategory(cmd.Context(), args[0]); err != nil {
			return fail(err)
		}

		fmt.Println("Deleted")

		return nil
	},
}

var adminUserDeleteCmd = &cobra.Command{
	Use:   "delete-user <user-id>",
	Short: "Delete a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := current.requireSession(cmd.Context()); err != nil {
			return fail(err)
		}

		if err := current.catalog.DeleteUser(cmd.Context(), args[0]); err != nil {
			return fail(err)
		}

		fmt.Println("Deleted")

		return nil
	},
}

func init() {
	adminCategoryCmd.AddCommand(adminCategoryAddCmd, adminCategoryRenameCmd, adminCategoryDeleteCmd)
	adminCmd.AddCommand(adminDashboardCmd, adminRoleCmd, adminCategoryCmd, adminUserDeleteCmd)

	adminRoleCmd.Flags().StringVar(&roleValue, "role", "", "new role (CUSTOMER, SELLER, ADMIN)")
	adminRoleCmd.Flags().StringVar(&statusValue, "status", "", "new status (active, banned)")
}
