package onboarding

// Slide is one page of the introductory carousel.
type Slide struct {
	Title       string
	Subtitle    string
	Description string
	Features    []string
}

// Slides are shown in order for Step0, Step1 and Step2.
var Slides = [...]Slide{
	{
		Title:       "Unified Intelligence Disciplines",
		Subtitle:    "Ten powerful intelligence modules in one platform",
		Description: "Access OSINT, GEOINT, HUMINT, SIGINT, SOCMINT, and more from a single, unified interface designed for professional analysts.",
		Features: []string{
			"Open Source Intelligence (OSINT)",
			"Geospatial Intelligence (GEOINT)",
			"Human Intelligence (HUMINT)",
			"Social Media Intelligence (SOCMINT)",
			"Network & Crypto Analysis",
		},
	},
	{
		Title:       "Real-Time Threat Alerts",
		Subtitle:    "Stay ahead with At A Glance intelligence",
		Description: "Get instant notifications about emerging threats, suspicious activities, and critical intelligence updates across all your monitored assets.",
		Features: []string{
			"Live threat monitoring",
			"Severity-based alerts",
			"Cross-platform correlation",
			"Automated risk assessment",
			"Custom alert rules",
		},
	},
	{
		Title:       "Secure, Free & Open-Source",
		Subtitle:    "Enterprise-grade security meets transparency",
		Description: "Built on open-source tools with enterprise security standards. Your data stays private while leveraging the power of community-driven intelligence tools.",
		Features: []string{
			"End-to-end encryption",
			"Local data processing",
			"Open-source transparency",
			"No vendor lock-in",
			"Community-driven updates",
		},
	},
}

// Text shown on the biometric screen.
const (
	PromptTitle    = "Secure Access"
	PromptSubtitle = "Choose your preferred authentication method"
	DoneTitle      = "Authentication Complete"
	DoneSubtitle   = "Welcome to OSINT Nexus! Initializing your intelligence dashboard..."
)
