package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	companyApp "github.com/prism-finance/prism/internal/application/company"
	companyDTO "github.com/prism-finance/prism/internal/application/company/dto"
	notificationApp "github.com/prism-finance/prism/internal/application/notification"
	supplierApp "github.com/prism-finance/prism/internal/application/supplier"
	supplierDTO "github.com/prism-finance/prism/internal/application/supplier/dto"
	userApp "github.com/prism-finance/prism/internal/application/user"
	userDTO "github.com/prism-finance/prism/internal/application/user/dto"
	"github.com/prism-finance/prism/internal/infrastructure/auth"
	"github.com/prism-finance/prism/internal/infrastructure/database"
	"github.com/prism-finance/prism/internal/infrastructure/repository"
	"github.com/prism-finance/prism/internal/interfaces/cli"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

var (
	env        string
	configPath string
	file       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Provision companies, suppliers and users from a YAML file",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Fixture file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// seeder runs fixtures through the application services as a platform
// operator, so the usual validation and tenant rules apply.
type seeder struct {
	companies *companyApp.Service
	suppliers *supplierApp.Service
	users     *userApp.ServiceDDD
	operator  *authorization.Identity
	log       logger.Interface
}

func run(cmd *cobra.Command, args []string) error {
	fh, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open fixture file: %w", err)
	}
	defer fh.Close()

	fixtures, err := LoadFixtures(fh)
	if err != nil {
		return err
	}

	cfg, db, log, err := cli.OpenDatabase(env, configPath)
	if err != nil {
		return err
	}
	defer database.Close(db)

	supplierRepo := repository.NewSupplierRepository(db)
	userRepo := repository.NewUserRepository(db, log)
	dispatcher := notificationApp.NewDispatcher(userRepo, repository.NewNotificationRepository(db), nil, log.Named("notification"))
	s := &seeder{
		companies: companyApp.NewService(repository.NewCompanyRepository(db), log),
		suppliers: supplierApp.NewService(supplierRepo, dispatcher, log),
		users: userApp.NewServiceDDD(
			userRepo,
			supplierRepo,
			auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
			auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpHours),
			log,
		),
		operator: &authorization.Identity{UserID: "seed", Role: authorization.RoleSuperAdmin},
		log:      log.Named("seed"),
	}

	return s.apply(cmd.Context(), fixtures)
}

func (s *seeder) apply(ctx context.Context, f *Fixtures) error {
	if ctx == nil {
		ctx = context.Background()
	}

	for _, cf := range f.Companies {
		company, err := s.companies.Create(ctx, s.operator, companyDTO.CreateCompanyRequest{
			Name:    cf.Name,
			SIRET:   cf.SIRET,
			Address: cf.Address,
		})
		if err != nil {
			return fmt.Errorf("company %q: %w", cf.Name, err)
		}
		s.log.Infow("company created", "company_id", company.ID, "name", company.Name)

		for _, uf := range cf.Admins {
			if err := s.createUser(ctx, uf, authorization.RoleAdmin, company.ID, ""); err != nil {
				return err
			}
		}

		for _, sf := range cf.Suppliers {
			sup, err := s.suppliers.Create(ctx, s.operator, supplierDTO.CreateSupplierRequest{
				CompanyID:         company.ID,
				Name:              sf.Name,
				SIRET:             sf.SIRET,
				VATNumber:         sf.VATNumber,
				Profession:        sf.Profession,
				Address:           sf.Address,
				PostalCode:        sf.PostalCode,
				City:              sf.City,
				Country:           sf.Country,
				IBAN:              sf.IBAN,
				BIC:               sf.BIC,
				Emails:            sf.Emails,
				Phone:             sf.Phone,
				ContractVariables: sf.ContractVariables,
			})
			if err != nil {
				return fmt.Errorf("supplier %q: %w", sf.Name, err)
			}
			s.log.Infow("supplier created", "supplier_id", sup.ID, "company_id", company.ID)

			for _, uf := range sf.Users {
				if err := s.createUser(ctx, uf, authorization.RoleSupplier, company.ID, sup.ID); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *seeder) createUser(ctx context.Context, uf UserFixture, role authorization.UserRole, companyID, supplierID string) error {
	_, err := s.users.CreateUser(ctx, s.operator, userDTO.CreateUserRequest{
		Email:      uf.Email,
		Password:   uf.Password,
		Name:       uf.Name,
		Surname:    uf.Surname,
		Role:       string(role),
		CompanyID:  companyID,
		SupplierID: supplierID,
	})
	if errors.IsConflictError(err) {
		s.log.Warnw("user already exists, skipping", "email", uf.Email)
		return nil
	}
	if err != nil {
		return fmt.Errorf("user %q: %w", uf.Email, err)
	}
	return nil
}
