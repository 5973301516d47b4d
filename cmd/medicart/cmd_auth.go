package main

import (
	"fmt"

	"github.com/medicart/medicart-client/internal/models"
	"github.com/medicart/medicart-client/internal/session"
	"github.com/spf13/cobra"
)

var (
	authEmail    string
	authPassword string
	authName     string
	authRole     string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {

		route, err := current.session.Login(cmd.Context(), &models.LoginRequest{
			Email:    authEmail,
			Password: authPassword,
		})
		if err != nil {
			return fail(err)
		}

		user, _ := current.session.User()

		fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Role)
		fmt.Printf("Landing: %s\n", route)

		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and start a session",
	RunE: func(cmd *cobra.Command, args []string) error {

		route, err := current.session.Register(cmd.Context(), &models.RegisterRequest{
			Name:     authName,
			Email:    authEmail,
			Password: authPassword,
			Role:     models.Role(authRole),
		})
		if err != nil {
			return fail(err)
		}

		fmt.Printf("Welcome, %s\n", authName)
		fmt.Printf("Landing: %s\n", route)

		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	Run: func(cmd *cobra.Command, args []string) {
		// Logout is unconditional; there is nothing to fail.
		current.session.Logout()
		fmt.Println("Logged out")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := current.session.Hydrate(cmd.Context()); err != nil {
			return fail(err)
		}

		user, ok := current.session.User()
		if !ok {
			fmt.Println("Not logged in")

			return nil
		}

		fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)

		for _, link := range session.NavLinks(user.Role) {
			fmt.Printf("  %-12s %s\n", link.Name, link.Href)
		}

		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{loginCmd, registerCmd} {
		cmd.Flags().StringVar(&authEmail, "email", "", "account email")
		cmd.Flags().StringVar(&authPassword, "password", "", "account password")
		cmd.MarkFlagRequired("email")
		cmd.MarkFlagRequired("password")
	}

	registerCmd.Flags().StringVar(&authName, "name", "", "display name")
	registerCmd.Flags().StringVar(&authRole, "role", "CUSTOMER", "account role (CUSTOMER or SELLER)")
	registerCmd.MarkFlagRequired("name")
}
