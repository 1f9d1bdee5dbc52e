package usecase

// DetectSource maps the hidden _source form id on the agency's own site to
// an acquisition source for the lead it creates.
func DetectSource(formSource string) string {
	switch formSource {
	case "google-ads-get-started":
		return "Google"
	case "tiktok-free-mockups":
		return "TikTok"
	default:
		return "Website"
	}
}
