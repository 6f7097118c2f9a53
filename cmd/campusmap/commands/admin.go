package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"campusmap/internal/cli/output"
	"campusmap/internal/cli/prompt"
	"campusmap/pkg/models"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin accounts",
	Long:  `Create and list the admin accounts allowed to edit the map dataset.`,
}

var adminCreateCmd = &cobra.Command{
	Use:   "create [username]",
	Short: "Create an admin account",
	Long: `Create an admin account that can authenticate against the API.

The password is prompted interactively unless --password is given, which is
intended for scripted setups only.

Examples:
  # Create an account interactively
  campusmap admin create alice

  # Prompt for the username too
  campusmap admin create`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdminCreate,
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "List admin accounts",
	RunE:  runAdminList,
}

var (
	adminPassword string
	adminOutput   string
)

func init() {
	adminCreateCmd.Flags().StringVar(&adminPassword, "password", "", "Password (prompted interactively when omitted)")
	adminListCmd.Flags().StringVarP(&adminOutput, "output", "o", "table", "Output format (table|json|yaml)")

	adminCmd.AddCommand(adminCreateCmd)
	adminCmd.AddCommand(adminListCmd)
}

const minPasswordLength = 8

func runAdminCreate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigAndLogger()
	if err != nil {
		return err
	}

	var username string
	if len(args) > 0 {
		username = args[0]
	} else {
		username, err = prompt.InputRequired("Username")
		if err != nil {
			return err
		}
	}

	password := adminPassword
	if password == "" {
		password, err = prompt.NewPassword(minPasswordLength)
		if err != nil {
			return err
		}
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	admin, err := st.CreateAdmin(cmd.Context(), models.InsertAdminUser{
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, models.ErrDuplicateAdmin) {
			return fmt.Errorf("admin account %q already exists", username)
		}
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	fmt.Printf("Admin account %q created (id: %s)\n", admin.Username, admin.ID)
	return nil
}

func runAdminList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigAndLogger()
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(adminOutput)
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	admins, err := st.ListAdmins(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list admin accounts: %w", err)
	}

	printer := output.NewPrinter(cmd.OutOrStdout(), format)
	if format != output.FormatTable {
		return printer.Print(admins)
	}

	table := output.NewTable("ID", "USERNAME")
	for _, admin := range admins {
		table.AddRow(admin.ID, admin.Username)
	}
	return printer.Print(table)
}
