package insights

import "github.com/ignite/pipeline-portal/internal/domain"

// keySeparator joins the three identity parts. The parts are ids and email
// addresses, neither of which contains "||".
const keySeparator = "||"

// CompositeKey builds the deduplication key for an engagement: lead
// identifier × campaign × client. Two replies with the same key are the same
// logical engagement and collapse to one counted unit.
func CompositeKey(lead, campaign, client string) string {
	return lead + keySeparator + campaign + keySeparator + client
}

// ReplyKey returns the composite key for a reply. The second return is false
// when the reply has neither lead_id nor from_email and cannot be attributed;
// such rows are skipped entirely by identity-keyed aggregation.
func ReplyKey(r domain.Reply) (string, bool) {
	lead := r.LeadIdentifier()
	if lead == "" {
		return "", false
	}
	return CompositeKey(lead, r.CampaignID, r.Client), true
}
