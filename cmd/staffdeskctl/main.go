// staffdeskctl is the operator CLI: tasks that must not ride on the HTTP
// surface, currently provisioning the first super admin account.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"staffdesk/internal/config"
	"staffdesk/internal/employee"
	"staffdesk/internal/shared/connection"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	root := &cobra.Command{
		Use:          "staffdeskctl",
		Short:        "Operator tooling for the staffdesk service",
		SilenceUsage: true,
	}
	root.AddCommand(newCreateSuperAdminCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newCreateSuperAdminCmd() *cobra.Command {
	var in employee.ProvisionInput

	cmd := &cobra.Command{
		Use:   "create-superadmin",
		Short: "Create an employee with the super_admin role",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			db, err := connection.ConnectGORMWithRetry(cfg.Database, 3)
			if err != nil {
				return err
			}
			if err := db.AutoMigrate(&employee.Employee{}); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			emp, err := employee.ProvisionSuperAdmin(ctx, db, in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "super admin created: id=%d email=%s\n", emp.ID, emp.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "full name")
	cmd.Flags().StringVar(&in.Email, "email", "", "login email")
	cmd.Flags().StringVar(&in.Password, "password", "", "initial password")
	cmd.Flags().StringVar(&in.Position, "position", "Administrator", "job position")
	cmd.Flags().Float64Var(&in.PayRate, "pay-rate", 0, "hourly pay rate")
	cmd.Flags().StringVar(&in.PhoneNumber, "phone", "", "phone number")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
