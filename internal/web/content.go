package web

type Feature struct {
	Eyebrow string
	Title   string
	Body    string
	Points  []string
}

type Testimonial struct {
	Quote string
	Name  string
	Title string
}

type Plan struct {
	Name        string
	Description string
	Price       string
	Features    []string
	CTA         string
	Popular     bool
}

type Member struct {
	Name  string
	Title string
	Bio   string
}

// Screenshot is one tile of the platform overview gallery. Accent colors
// the mock chart drawn for it.
type Screenshot struct {
	Title  string
	Accent string
}

// Landing holds the static copy of the home page.
type Landing struct {
	Features     []Feature
	Screenshots  []Screenshot
	Testimonials []Testimonial
	Plans        []Plan
	Team         []Member
}

var landing = Landing{
	Features: []Feature{
		{
			Eyebrow: "Computer Vision Technology",
			Title:   "Automated Core Analysis & Inspection",
			Body:    "Our computer vision system detects defects, measures wear and assesses restoration potential with accuracy traditional manufacturing software cannot match.",
			Points: []string{
				"Identifies 92% of defects that human inspectors miss",
				"Automatic part categorization and restoration potential scoring",
				"Learns from your technicians' expertise over time",
			},
		},
		{
			Eyebrow: "Workflow Intelligence",
			Title:   "Core Tracking From Intake to Shipment",
			Body:    "Every core is tracked through teardown, restoration and test so nothing falls through the cracks between stations.",
			Points: []string{
				"Works offline on the shop floor and syncs automatically",
				"Custom inspection forms for every product line",
				"Dashboards for throughput, yield and turnaround time",
			},
		},
	},
	Screenshots: []Screenshot{
		{Title: "Comprehensive Dashboard", Accent: "#6A4DFF"},
		{Title: "Intuitive Form Builder", Accent: "#6A4DFF"},
		{Title: "Advanced Data Analysis", Accent: "#00BFA5"},
		{Title: "Mobile Data Collection", Accent: "#6A4DFF"},
		{Title: "Team Collaboration Tools", Accent: "#00BFA5"},
		{Title: "Custom Report Builder", Accent: "#6A4DFF"},
	},
	Testimonials: []Testimonial{
		{
			Quote: "Repaired.co has completely transformed how we manage field inspections. The ability to work offline and sync automatically has eliminated data loss issues we struggled with for years.",
			Name:  "David Chen",
			Title: "Operations Director, BuildTech",
		},
		{
			Quote: "The analytics capabilities are phenomenal. We can finally see where our restoration bottlenecks are and fix them.",
			Name:  "Sarah Johnson",
			Title: "Project Manager, EnviroSurvey",
		},
		{
			Quote: "The custom form builder is incredibly flexible. We rolled out new inspection checklists in days instead of months.",
			Name:  "Michael Torres",
			Title: "Quality Manager, InfraInspect",
		},
	},
	Plans: []Plan{
		{
			Name:        "Starter",
			Description: "Perfect for small teams just getting started",
			Price:       "$29",
			Features:    []string{"Up to 5 users", "Basic form builder", "Data export (CSV, Excel)", "Mobile app access"},
			CTA:         "Start Free Trial",
		},
		{
			Name:        "Professional",
			Description: "Ideal for growing teams with advanced needs",
			Price:       "$59",
			Features:    []string{"Up to 20 users", "Advanced form builder", "Custom dashboards", "20GB storage", "Priority support"},
			CTA:         "Start Free Trial",
			Popular:     true,
		},
		{
			Name:        "Enterprise",
			Description: "For organizations with complex requirements",
			Price:       "$99",
			Features:    []string{"Unlimited users", "All Professional features", "Advanced analytics", "Custom integrations", "Unlimited storage", "24/7 dedicated support", "Custom training"},
			CTA:         "Contact Sales",
		},
	},
	Team: []Member{
		{Name: "Alex Rodriguez", Title: "CEO & Founder", Bio: "Former field engineer with 15+ years experience in construction management."},
		{Name: "Maya Patel", Title: "CTO", Bio: "Software architect specializing in mobile and offline-first applications."},
		{Name: "David Kim", Title: "Head of Product", Bio: "User experience expert with background in industrial engineering."},
		{Name: "Sophie Williams", Title: "Customer Success", Bio: "Dedicated to ensuring customers achieve their goals with our platform."},
	},
}
