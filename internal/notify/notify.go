// Package notify sends each encoded share to its keeper by email via AWS
// SES, adapted from the teacher's SES reset-code path in secretr.go. It is
// entirely optional: the CLI's split command only calls it when --notify
// is passed, sending each share to the --notify-email address at the same
// position in emission order; shares with no such address are not sent.
package notify

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
)

// Share is the minimal information notify needs about one recipient.
type Share struct {
	KeeperEmail string
	Label       string
	Encoded     string // codec-encoded share, ready to paste into the body
}

// SendShares emails each share to its KeeperEmail, skipping any with an
// empty address. It reads AWS credentials/region from the environment, the
// same variables the teacher's secretr.go checks before constructing an SES
// session.
func SendShares(shares []Share) error {
	region := os.Getenv("AWS_REGION")
	if region == "" || os.Getenv("AWS_ACCESS_KEY_ID") == "" || os.Getenv("AWS_SECRET_ACCESS_KEY") == "" {
		return fmt.Errorf("notify: AWS SES configuration missing (AWS_REGION / AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY)")
	}
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return fmt.Errorf("notify: creating AWS session: %w", err)
	}
	svc := ses.New(sess)
	source := os.Getenv("XSSS_NOTIFY_FROM")
	if source == "" {
		return fmt.Errorf("notify: XSSS_NOTIFY_FROM is not set")
	}

	for _, sh := range shares {
		if sh.KeeperEmail == "" {
			continue
		}
		subject := fmt.Sprintf("Your share of secret %q", sh.Label)
		body := fmt.Sprintf("You have been issued a share of the secret %q.\n\nKeep it safe and do not share it with anyone.\n\n%s\n", sh.Label, sh.Encoded)
		input := &ses.SendEmailInput{
			Destination: &ses.Destination{ToAddresses: []*string{aws.String(sh.KeeperEmail)}},
			Message: &ses.Message{
				Body:    &ses.Body{Text: &ses.Content{Charset: aws.String("UTF-8"), Data: aws.String(body)}},
				Subject: &ses.Content{Charset: aws.String("UTF-8"), Data: aws.String(subject)},
			},
			Source: aws.String(source),
		}
		if _, err := svc.SendEmail(input); err != nil {
			return fmt.Errorf("notify: sending to %s: %w", sh.KeeperEmail, err)
		}
	}
	return nil
}
