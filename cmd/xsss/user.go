package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/oarkflow/xsss/internal/auth"
	"github.com/oarkflow/xsss/internal/store"
)

// newUserCmd wires internal/auth's password hashing and role gate into the
// storage collaborator's user/user_roles tables (spec §6): "xsss user add"
// is how an operator populates the RBAC skeleton those tables describe.
func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the RBAC skeleton backing split/recover access",
	}
	cmd.AddCommand(newUserAddCmd())
	return cmd
}

func newUserAddCmd() *cobra.Command {
	var (
		storePath string
		email     string
		password  string
		role      string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user and assign it a role",
		RunE: func(cmd *cobra.Command, args []string) error {
			if role != auth.RoleAdmin && role != auth.RoleUser {
				return fmt.Errorf("--role must be %q or %q", auth.RoleAdmin, auth.RoleUser)
			}
			st, err := store.Open(storePath)
			if err != nil {
				return err
			}
			if _, err := st.UserByEmail(email); err == nil {
				return fmt.Errorf("a user with email %s already exists", email)
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			u := store.User{ID: uuid.NewString(), Email: email, PasswordHash: hash}
			if err := st.PutUser(u); err != nil {
				return err
			}
			if err := st.PutUserRole(u.ID, role); err != nil {
				return err
			}
			fmt.Println(u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&storePath, "store", "", "store file to create the user in")
	cmd.Flags().StringVar(&email, "email", "", "user's email")
	cmd.Flags().StringVar(&password, "password", "", "user's password")
	cmd.Flags().StringVar(&role, "role", auth.RoleUser, "role to assign: admin or user")
	cmd.MarkFlagRequired("store")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}
