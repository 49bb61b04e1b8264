package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/oarkflow/xsss/internal/audit"
	"github.com/oarkflow/xsss/internal/auth"
	"github.com/oarkflow/xsss/internal/codec"
	"github.com/oarkflow/xsss/internal/config"
	"github.com/oarkflow/xsss/internal/device"
	"github.com/oarkflow/xsss/internal/notify"
	"github.com/oarkflow/xsss/internal/rng"
	"github.com/oarkflow/xsss/internal/store"
	"github.com/oarkflow/xsss/shamir"
)

func newSplitCmd() *cobra.Command {
	var (
		threshold    int
		shares       int
		seedHex      string
		outDir       string
		format       string
		file         string
		env          string
		stdin        bool
		label        string
		storePath    string
		notifyEmails []string
		doNotify     bool
		asUserEmail  string
	)

	cmd := &cobra.Command{
		Use:   "split [secret]",
		Short: "Split a secret into threshold shares",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("threshold") {
				threshold = cfg.DefaultK
			}
			if !cmd.Flags().Changed("shares") {
				shares = cfg.DefaultN
			}
			if format == "" {
				format = cfg.Format
			}
			fmtName, err := codec.ParseFormat(format)
			if err != nil {
				return err
			}

			var literal string
			if len(args) == 1 {
				literal = args[0]
			}
			secret, err := readSecret(literal, file, env, stdin)
			if err != nil {
				return err
			}

			engine, err := shamir.New(threshold)
			if err != nil {
				return err
			}

			var source rng.Source = rng.System{}
			if seedHex != "" {
				raw, err := hex.DecodeString(seedHex)
				if err != nil || len(raw) != rng.SeedSize {
					return fmt.Errorf("--seed must be %d hex-encoded bytes", rng.SeedSize)
				}
				var seed [rng.SeedSize]byte
				copy(seed[:], raw)
				source, err = rng.NewSeeded(seed)
				if err != nil {
					return err
				}
			}

			stream, err := engine.SplitWithRNG(secret, source)
			if err != nil {
				return err
			}
			defer stream.Close()
			issued, err := stream.Take(shares)
			if err != nil {
				return err
			}

			if label == "" {
				label = fmt.Sprintf("secret-%d", time.Now().UnixNano())
			}

			if asUserEmail != "" && storePath == "" {
				return fmt.Errorf("--as-user requires --store")
			}

			var st *store.FileStore
			var creatorID string
			if storePath != "" {
				st, err = store.Open(storePath)
				if err != nil {
					return err
				}
				if asUserEmail != "" {
					u, err := st.UserByEmail(asUserEmail)
					if err != nil {
						return fmt.Errorf("--as-user %s: %w", asUserEmail, err)
					}
					if !auth.CanSplit(st.RolesForUser(u.ID)) {
						return fmt.Errorf("--as-user %s: not permitted to split", asUserEmail)
					}
					creatorID = u.ID
				}
			}

			keeper := device.Fingerprint()
			secretRow := store.Secret{
				ID:        uuid.NewString(),
				CreatorID: creatorID,
				Label:     label,
				N:         shares,
				K:         threshold,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if st != nil {
				if err := st.PutSecret(secretRow); err != nil {
					return err
				}
			}

			var toNotify []notify.Share
			for i, sh := range issued {
				envelope := codec.Envelope{Threshold: sh.Threshold, ID: sh.ID, CreatedAt: time.Now()}
				encoded, err := codec.Encode(fmtName, sh, envelope)
				if err != nil {
					return err
				}

				if outDir != "" {
					if err := os.MkdirAll(outDir, 0700); err != nil {
						return err
					}
					name := fmt.Sprintf("share-%03d.%s", sh.X, string(fmtName))
					if err := os.WriteFile(filepath.Join(outDir, name), encoded, 0600); err != nil {
						return err
					}
				} else {
					fmt.Println(string(encoded))
				}

				if st != nil {
					if err := st.PutShare(store.Share{
						ID:        uuid.NewString(),
						SecretID:  secretRow.ID,
						KeeperID:  keeper,
						ShareData: string(encoded),
						CreatedAt: time.Now(),
						UpdatedAt: time.Now(),
					}); err != nil {
						return err
					}
				}

				if doNotify && i < len(notifyEmails) {
					toNotify = append(toNotify, notify.Share{KeeperEmail: notifyEmails[i], Label: label, Encoded: string(encoded)})
				}
			}

			if doNotify {
				if err := notify.SendShares(toNotify); err != nil {
					return err
				}
			}

			logger := audit.NewLogger(cfg.AuditLogPath, []byte(cfg.AuditKeyHex))
			_ = logger.Log("split", label, keeper, fmt.Sprintf("n=%d k=%d", shares, threshold))

			return nil
		},
	}

	cmd.Flags().IntVarP(&threshold, "threshold", "k", 3, "minimum shares required to recover")
	cmd.Flags().IntVarP(&shares, "shares", "n", 5, "number of shares to issue")
	cmd.Flags().StringVar(&seedHex, "seed", "", "32-byte hex seed for a deterministic split")
	cmd.Flags().StringVar(&outDir, "out", "", "directory to write encoded shares into (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "", "json, hex, base64, or raw")
	cmd.Flags().StringVar(&file, "file", "", "read the secret from a file")
	cmd.Flags().StringVar(&env, "env", "", "read the secret from an environment variable")
	cmd.Flags().BoolVar(&stdin, "stdin", false, "read the secret from stdin")
	cmd.Flags().StringVar(&label, "label", "", "label to record this split under")
	cmd.Flags().StringVar(&storePath, "store", "", "persist the split's metadata to this store file")
	cmd.Flags().StringSliceVar(&notifyEmails, "notify-email", nil, "keeper emails, in share emission order")
	cmd.Flags().BoolVar(&doNotify, "notify", false, "email each share to its --notify-email keeper via AWS SES")
	cmd.Flags().StringVar(&asUserEmail, "as-user", "", "require this user (from --store) to hold a role that may split")

	return cmd
}
