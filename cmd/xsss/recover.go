package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oarkflow/clipboard"
	"github.com/spf13/cobra"

	"github.com/oarkflow/xsss/internal/audit"
	"github.com/oarkflow/xsss/internal/auth"
	"github.com/oarkflow/xsss/internal/codec"
	"github.com/oarkflow/xsss/internal/config"
	"github.com/oarkflow/xsss/internal/device"
	"github.com/oarkflow/xsss/internal/store"
	"github.com/oarkflow/xsss/shamir"
)

func newRecoverCmd() *cobra.Command {
	var (
		format      string
		dir         string
		threshold   int
		toClipboard bool
		storePath   string
		asUserEmail string
	)

	cmd := &cobra.Command{
		Use:   "recover [share ...]",
		Short: "Recover a secret from a set of shares",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Format
			}
			fmtName, err := codec.ParseFormat(format)
			if err != nil {
				return err
			}

			if asUserEmail != "" && storePath == "" {
				return fmt.Errorf("--as-user requires --store")
			}
			if storePath != "" && asUserEmail != "" {
				st, err := store.Open(storePath)
				if err != nil {
					return err
				}
				u, err := st.UserByEmail(asUserEmail)
				if err != nil {
					return fmt.Errorf("--as-user %s: %w", asUserEmail, err)
				}
				if !auth.CanRecover(st.RolesForUser(u.ID)) {
					return fmt.Errorf("--as-user %s: not permitted to recover", asUserEmail)
				}
			}

			var blobs [][]byte
			if dir != "" {
				entries, err := os.ReadDir(dir)
				if err != nil {
					return err
				}
				for _, e := range entries {
					if e.IsDir() {
						continue
					}
					data, err := os.ReadFile(filepath.Join(dir, e.Name()))
					if err != nil {
						return err
					}
					blobs = append(blobs, data)
				}
			}
			for _, a := range args {
				blobs = append(blobs, []byte(a))
			}
			if len(blobs) == 0 {
				return fmt.Errorf("no shares supplied: pass them as arguments or with --dir")
			}

			shares := make([]shamir.Share, 0, len(blobs))
			for _, b := range blobs {
				sh, _, err := codec.Decode(fmtName, b)
				if err != nil {
					return err
				}
				shares = append(shares, sh)
			}

			secret, err := shamir.Recover(shares, threshold)
			if err != nil {
				return err
			}

			logger := audit.NewLogger(cfg.AuditLogPath, []byte(cfg.AuditKeyHex))
			_ = logger.Log("recover", "", device.Fingerprint(), fmt.Sprintf("m=%d", len(shares)))

			if toClipboard {
				return clipboard.WriteAll(string(secret))
			}
			fmt.Println(string(secret))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "json, hex, base64, or raw")
	cmd.Flags().StringVar(&dir, "dir", "", "read every file in this directory as a share")
	cmd.Flags().IntVarP(&threshold, "threshold", "k", 0, "required threshold (0: infer from share metadata or count)")
	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "copy the recovered secret to the clipboard instead of printing it")
	cmd.Flags().StringVar(&storePath, "store", "", "store file to check --as-user against")
	cmd.Flags().StringVar(&asUserEmail, "as-user", "", "require this user (from --store) to hold a role that may recover")

	return cmd
}
