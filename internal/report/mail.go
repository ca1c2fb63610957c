package report

import (
	"driver-training-service/internal/domain"
	"fmt"
	"net/url"
	"strings"
)

// MailtoLink builds a mail draft link with a pre-filled subject and body.
// Spaces are encoded as %20; mail clients do not decode '+' in mailto URLs.
func MailtoLink(subject, body string) string {
	return "mailto:?subject=" + encodeComponent(subject) + "&body=" + encodeComponent(body)
}

// TrainingReportMailto returns the draft used to send a driver's training report.
func TrainingReportMailto(d domain.Driver) string {
	return MailtoLink(
		fmt.Sprintf("Training Report - %s", d.Name),
		fmt.Sprintf("Please find attached the training report for %s.", d.Name),
	)
}

func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
