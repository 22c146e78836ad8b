// Package mailer implements the reporting collaborator over SMTP.
//
// Reconciliation runs finish asynchronously; the requester learns the
// outcome by email. The rates feature hands the mailer a vendor name, a
// success flag and a detail string, and the mailer owns the notification
// wording and delivery.
//
// # Report Contract
//
//   - Success: subject "Rate comparison for <vendor> generated", the
//     storage location in the body, and the generated CSV attached.
//   - Failure: subject "Rate comparison for <vendor> failed" with the
//     cause in the body.
//
// # Configuration
//
// The Config struct defines the SMTP host, port, optional credentials
// and the sender identity. Without a username the client connects
// unauthenticated, which suits local relays.
//
// # Usage
//
//	m, err := mailer.New(cfg.Mail)
//	err = m.Report(ctx, "ops@example.com", "Sunrise", true, "rates/sunrise/job.csv", "/tmp/job.csv")
package mailer
