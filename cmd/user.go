package cmd

import (
	"fmt"

	"partflow-sync/core/database"
	"partflow-sync/feature/users"

	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage accounts of the user store",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		fullName, _ := cmd.Flags().GetString("full-name")
		role, _ := cmd.Flags().GetString("role")

		if role != users.RoleRep && role != users.RoleAdmin {
			return fmt.Errorf("role must be %s or %s", users.RoleRep, users.RoleAdmin)
		}

		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}
		if err := users.Migrate(db); err != nil {
			return err
		}

		u, err := users.NewService(users.NewRepository(db), logg).
			Register(cmd.Context(), username, password, fullName, role)
		if err != nil {
			return err
		}

		fmt.Printf("Created user %s (id %d, role %s)\n", u.Username, u.ID, u.Role)
		return nil
	},
}

func init() {
	userCreateCmd.Flags().String("username", "", "Username")
	userCreateCmd.Flags().String("password", "", "Password")
	userCreateCmd.Flags().String("full-name", "", "Display name")
	userCreateCmd.Flags().String("role", users.RoleRep, "Role (rep or admin)")
	_ = userCreateCmd.MarkFlagRequired("username")
	_ = userCreateCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userCreateCmd)
	RootCmd.AddCommand(userCmd)
}
