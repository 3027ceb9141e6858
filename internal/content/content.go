// Package content holds the static copy of the landing page. Every
// registry is fixed at build time; accessors return copies so callers can
// never change what the next request renders.
package content

type Metric struct {
	Label string
	Value string
}

// Entry is one card in a section: a feature, service, case study or
// process step.
type Entry struct {
	Title       string
	Description string
	Icon        string
	// Category is the niche of a case study.
	Category string
	Metrics  []Metric
}

type Link struct {
	Label string
	Href  string
}

var features = []Entry{
	{Title: "Rapid Impact", Description: "Launch automations in days, not months. We ship quick wins first.", Icon: "lucide--zap"},
	{Title: "Solid Architecture", Description: "Reliable flows with retries, alerts, and observability baked in.", Icon: "lucide--workflow"},
	{Title: "AI Where It Fits", Description: "Add smart steps with LLMs for enrichment, routing and generation.", Icon: "lucide--bot"},
	{Title: "Measured ROI", Description: "Dashboards that prove time saved and dollars returned.", Icon: "lucide--gauge"},
}

var featureChecklist = []string{
	"Best-practice patterns",
	"Error handling + alerts",
	"Documentation included",
}

var services = []Entry{
	{Title: "Automation Strategy", Description: "Map high-impact workflows, prioritize ROI, and design scalable automations.", Icon: "lucide--workflow"},
	{Title: "CRM Integrations", Description: "Connect HubSpot, Pipedrive, Close, or custom CRMs with your tools.", Icon: "lucide--plug"},
	{Title: "Lead Enrichment", Description: "Auto-enrich contacts from email, forms, and ads with firmographic data.", Icon: "lucide--database"},
	{Title: "Outbound Automation", Description: "Personalized email outreach with smart sequencing and reply routing.", Icon: "lucide--mail"},
	{Title: "AI Assistants & Chatbots", Description: "Deploy AI for triage, qualification, and customer support workflows.", Icon: "lucide--bot"},
	{Title: "Analytics & Dashboards", Description: "Real-time marketing performance dashboards across channels and CRMs.", Icon: "lucide--line-chart"},
	{Title: "Workflow Orchestration", Description: "Design resilient pipelines with retries, alerts, and observability.", Icon: "lucide--webhook"},
	{Title: "AI-Augmented Processes", Description: "Use LLMs for scoring, summarization, routing, and insights at scale.", Icon: "lucide--brain"},
	{Title: "Zapier/Make Buildouts", Description: "Production-grade automations with governance and documentation.", Icon: "lucide--zap"},
}

const serviceFootnote = "Delivered with documentation, QA, and monitoring. Built with your stack and best practices."

var caseStudies = []Entry{
	{
		Title:       "Cold Email CRM Automation",
		Category:    "Outbound Marketing / Sales",
		Description: "Automated lead capture from replies, enriched contacts, and routed qualified leads into CRM with tags and owners.",
		Metrics: []Metric{
			{Label: "Reply triage time", Value: "-85%"},
			{Label: "Qualified leads", Value: "+42%"},
			{Label: "Manual tasks", Value: "-70%"},
		},
	},
	{
		Title:       "Lead Capture → CRM Pipeline",
		Category:    "Performance Marketing",
		Description: "Unified form fills from ads and landing pages, validated entries, enriched firmographics, and synced to HubSpot.",
		Metrics: []Metric{
			{Label: "Data accuracy", Value: "+31%"},
			{Label: "Time-to-contact", Value: "-60%"},
			{Label: "CPL efficiency", Value: "+18%"},
		},
	},
	{
		Title:       "Marketing Analytics Automation",
		Category:    "Growth Reporting",
		Description: "Automated channel ingestion, modeled attribution, and shipped a live dashboard for revenue and CAC tracking.",
		Metrics: []Metric{
			{Label: "Reporting time", Value: "-90%"},
			{Label: "Attribution coverage", Value: "+50%"},
			{Label: "Exec visibility", Value: "Real-time"},
		},
	},
}

var steps = []Entry{
	{Title: "Free audit", Description: "We map your processes and identify high-ROI automation opportunities.", Icon: "lucide--clipboard-check"},
	{Title: "Build", Description: "We implement and test robust workflows across your tool stack.", Icon: "lucide--wrench"},
	{Title: "Launch", Description: "We ship, document and train your team to operate the flows.", Icon: "lucide--check-circle-2"},
	{Title: "Scale", Description: "We monitor, iterate and expand automations as you grow.", Icon: "lucide--rocket"},
}

var navLinks = []Link{
	{Label: "Features", Href: "#features"},
	{Label: "Services", Href: "#services"},
	{Label: "Process", Href: "#process"},
	{Label: "Contact", Href: "#cta"},
}

// Features returns the feature grid entries.
func Features() []Entry { return clone(features) }

// FeatureChecklist is shown under every feature card.
func FeatureChecklist() []string { return append([]string(nil), featureChecklist...) }

// Services returns the service catalogue, also published as structured data.
func Services() []Entry { return clone(services) }

// ServiceFootnote is the shared closing line of each service card.
func ServiceFootnote() string { return serviceFootnote }

// CaseStudies returns the case studies, also published as structured data.
func CaseStudies() []Entry { return clone(caseStudies) }

// Steps returns the process steps in order.
func Steps() []Entry { return clone(steps) }

// NavLinks are the in-page anchors shared by the top navigation and footer.
func NavLinks() []Link { return append([]Link(nil), navLinks...) }

func clone(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = e
		if e.Metrics != nil {
			out[i].Metrics = append([]Metric(nil), e.Metrics...)
		}
	}
	return out
}
