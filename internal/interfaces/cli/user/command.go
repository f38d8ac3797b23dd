package user

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	userApp "github.com/prism-finance/prism/internal/application/user"
	"github.com/prism-finance/prism/internal/infrastructure/auth"
	"github.com/prism-finance/prism/internal/infrastructure/database"
	"github.com/prism-finance/prism/internal/infrastructure/repository"
	"github.com/prism-finance/prism/internal/interfaces/cli"
)

var (
	env        string
	configPath string
	email      string
	name       string
	surname    string
	password   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User account tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newCreateSuperAdminCommand())

	return cmd
}

func newCreateSuperAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-super-admin",
		Short: "Create a platform super admin",
		Long:  `Create the first super admin account. The password is prompted for when --password is omitted.`,
		RunE:  runCreateSuperAdmin,
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&name, "name", "", "First name (required)")
	cmd.Flags().StringVar(&surname, "surname", "", "Last name (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when empty)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("surname")

	return cmd
}

func runCreateSuperAdmin(cmd *cobra.Command, args []string) error {
	cfg, db, log, err := cli.OpenDatabase(env, configPath)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if password == "" {
		password, err = promptPassword()
		if err != nil {
			return err
		}
	}

	service := userApp.NewServiceDDD(
		repository.NewUserRepository(db, log),
		repository.NewSupplierRepository(db),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpHours),
		log,
	)

	created, err := service.CreateSuperAdmin(context.Background(), email, password, name, surname)
	if err != nil {
		return fmt.Errorf("failed to create super admin: %w", err)
	}

	log.Infow("super admin created", "user_id", created.ID, "email", created.Email)
	fmt.Printf("Super admin %s created (%s)\n", created.Email, created.ID)
	return nil
}

func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("--password is required when stdin is not a terminal")
	}

	fmt.Print("Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Print("Confirm password: ")
	second, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if string(first) != string(second) {
		return "", fmt.Errorf("passwords do not match")
	}
	pw := strings.TrimSpace(string(first))
	if pw == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return pw, nil
}
