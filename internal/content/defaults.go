package content

// Default returns the built-in GridGuard registry.
func Default() *Registry {
	return &Registry{
		Brand: Brand{
			Name:        "GridGuard",
			Tagline:     "Keep essential power on — smarter, greener backup for your home.",
			Description: "We repurpose recycled Li-ion cells into modular home battery packs that plug into any wall outlet and power essential devices during outages.",
		},
		Images: Images{
			HeroProduct: "/assets/placeholder-product.svg",
			HeroBg:      "/assets/newyorkoutage_enchanced.jpg",
		},
		NavLinks: []Link{
			{ID: "features", Label: "Features", Href: "#features"},
			{ID: "how-it-works", Label: "How It Works", Href: "#how-it-works"},
			{ID: "specs", Label: "Specs", Href: "#specs"},
			{ID: "faq", Label: "FAQ", Href: "#faq"},
		},
		Hero: Hero{
			Headline: "Make your home",
			RotatingWords: []RotatingWord{
				{Word: "smarter", Color: "#F59E0B"},
				{Word: "greener", Color: "#34D399"},
				{Word: "safer", Color: "#FBBF24"},
			},
			Description:      "We repurpose recycled Li-ion cells into modular home battery packs that plug into any wall outlet and power essential devices during outages.",
			CTAText:          "Get Notified",
			CTAHref:          "#cta",
			SecondaryCTAText: "Learn More",
			SecondaryCTAHref: "#features",
		},
		Features: Features{
			SectionTitle:    "Why GridGuard?",
			SectionSubtitle: "Simple, sustainable backup power that just works.",
			Items: []Feature{
				{
					ID:          "backup-automation",
					Title:       "Automatic Backup",
					Description: "Seamless switchover during outages. Your essentials stay powered without lifting a finger.",
					Icon:        "lightning",
					Color:       "primary",
				},
				{
					ID:          "plug-and-play",
					Title:       "Plug & Play",
					Description: "No electrician needed. Simply plug into any standard outlet and you're protected.",
					Icon:        "plug",
					Color:       "brown",
				},
				{
					ID:          "sustainable",
					Title:       "Recycled Cells",
					Description: "Built from tested, repurposed Li-ion cells. Great for the planet, great for your wallet.",
					Icon:        "recycle",
					Color:       "eco",
				},
			},
		},
		HowItWorks: HowItWorks{
			SectionTitle:    "How It Works",
			SectionSubtitle: "From recycled cells to reliable power in three simple steps.",
			Steps: []Step{
				{
					ID:          "step-1",
					Number:      "01",
					Title:       "Collection & Testing",
					Description: "We source retired battery cells from EVs and electronics, rigorously testing each one for safety and capacity.",
				},
				{
					ID:          "step-2",
					Number:      "02",
					Title:       "Assembly & BMS",
					Description: "Qualified cells are assembled into modules with a smart Battery Management System for optimal performance and safety.",
				},
				{
					ID:          "step-3",
					Number:      "03",
					Title:       "Install & Auto Backup",
					Description: "Plug in your GridGuard unit. It charges from the grid and automatically powers your essentials during outages.",
				},
			},
		},
		Specs: Specs{
			SectionTitle:    "Technical Specifications",
			SectionSubtitle: "Built for reliability, designed for your home.",
			Items: []Spec{
				{ID: "capacity", Label: "Battery Capacity", Value: "2 kWh", Description: "Per module, expandable up to 10 kWh", Icon: "battery", Color: "primary"},
				{ID: "output", Label: "Output", Value: "120V AC", Description: "Standard household outlet + 2x USB-A, 1x USB-C", Icon: "outlet", Color: "primary"},
				{ID: "power", Label: "Continuous Power", Value: "1,500W", Description: "Peak 2,000W for motor startup", Icon: "power", Color: "eco"},
				{ID: "safety", Label: "Safety Certified", Value: "UL Listed", Description: "FCC, CE certified. Built-in overcharge protection", Icon: "shield", Color: "brown"},
				{ID: "dimensions", Label: "Dimensions", Value: `15" × 10" × 8"`, Description: "Compact footprint, ~35 lbs per module", Icon: "dimensions", Color: "eco"},
				{ID: "warranty", Label: "Warranty", Value: "5 Years", Description: "Full replacement warranty included", Icon: "warranty", Color: "brown"},
			},
		},
		FAQ: FAQ{
			SectionTitle:    "Frequently Asked Questions",
			SectionSubtitle: "Everything you need to know about GridGuard.",
			Items: []Question{
				{
					ID:       "faq-1",
					Question: "How long will GridGuard power my home during an outage?",
					Answer:   "A single 2 kWh module can power essential devices (router, phone chargers, LED lights, small fridge) for 8-12 hours depending on usage. You can stack multiple modules for extended runtime.",
				},
				{
					ID:       "faq-2",
					Question: "Is it safe to use recycled battery cells?",
					Answer:   "Absolutely. Every cell undergoes rigorous testing for capacity, internal resistance, and safety before being approved for use. Our Battery Management System continuously monitors each cell and provides multi-layer protection.",
				},
				{
					ID:       "faq-3",
					Question: "Do I need an electrician to install GridGuard?",
					Answer:   "No! GridGuard is truly plug-and-play. Simply plug it into any standard 120V outlet. For whole-home backup integration, we recommend professional installation.",
				},
				{
					ID:       "faq-4",
					Question: "How does the automatic backup work?",
					Answer:   "GridGuard continuously monitors your power connection. When it detects an outage, it switches to battery power in milliseconds — so fast that sensitive electronics won't even notice the transition.",
				},
				{
					ID:       "faq-5",
					Question: "Can I expand my GridGuard system later?",
					Answer:   "Yes! GridGuard is modular by design. Start with one unit and add more modules as your needs grow. Each module connects seamlessly for increased capacity.",
				},
			},
		},
		CTA: CTA{
			Badge:        "Quick Feedback",
			Headline:     "Help Shape GridGuard",
			Subheadline:  "Take our quick survey and help us build the backup power solution you need.",
			ButtonText:   "Take the Survey",
			FormURL:      "https://forms.fillout.com/t/cZ91LeNhM8us",
			Note:         "Takes less than 2 minutes. Your feedback helps us build a better product.",
			NotifyLabel:  "Get notified when GridGuard launches",
			NotifyButton: "Notify Me",
		},
		Footer: Footer{
			Description: "Sustainable backup power for modern homes. Built from recycled batteries, designed for reliability.",
			Links: []Link{
				{Label: "Privacy Policy", Href: "#"},
				{Label: "Terms of Service", Href: "#"},
				{Label: "Contact", Href: "#"},
			},
			SocialLinks: []Link{
				{Label: "Twitter", Href: "#", Icon: "twitter"},
				{Label: "LinkedIn", Href: "#", Icon: "linkedin"},
				{Label: "Instagram", Href: "#", Icon: "instagram"},
			},
		},
	}
}
