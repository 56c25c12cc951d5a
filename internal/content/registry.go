// Package content holds the content registry: every piece of copy, asset
// path and list item the landing page shows, keyed by section.
package content

// Brand is the product identity.
type Brand struct {
	Name        string `yaml:"name" koanf:"name" json:"name"`
	Tagline     string `yaml:"tagline" koanf:"tagline" json:"tagline"`
	Description string `yaml:"description" koanf:"description" json:"description"`
	// Year is shown in the footer copyright; zero means the current year.
	Year int `yaml:"year,omitempty" koanf:"year" json:"year,omitempty"`
}

// Images are asset paths served from the site root.
type Images struct {
	HeroProduct string `yaml:"hero_product" koanf:"hero_product" json:"hero_product"`
	HeroBg      string `yaml:"hero_bg" koanf:"hero_bg" json:"hero_bg"`
}

// Link is a labeled hyperlink.
type Link struct {
	ID    string `yaml:"id,omitempty" koanf:"id" json:"id,omitempty"`
	Label string `yaml:"label" koanf:"label" json:"label"`
	Href  string `yaml:"href" koanf:"href" json:"href"`
	Icon  string `yaml:"icon,omitempty" koanf:"icon" json:"icon,omitempty"`
}

// RotatingWord is one entry of the hero headline rotation.
type RotatingWord struct {
	Word  string `yaml:"word" koanf:"word" json:"word"`
	Color string `yaml:"color" koanf:"color" json:"color"`
}

type Hero struct {
	Headline         string         `yaml:"headline" koanf:"headline" json:"headline"`
	RotatingWords    []RotatingWord `yaml:"rotating_words" koanf:"rotating_words" json:"rotating_words"`
	Description      string         `yaml:"description" koanf:"description" json:"description"`
	CTAText          string         `yaml:"cta_text" koanf:"cta_text" json:"cta_text"`
	CTAHref          string         `yaml:"cta_href" koanf:"cta_href" json:"cta_href"`
	SecondaryCTAText string         `yaml:"secondary_cta_text" koanf:"secondary_cta_text" json:"secondary_cta_text"`
	SecondaryCTAHref string         `yaml:"secondary_cta_href" koanf:"secondary_cta_href" json:"secondary_cta_href"`
}

// Feature is a card in the features grid.
type Feature struct {
	ID          string `yaml:"id" koanf:"id" json:"id"`
	Title       string `yaml:"title" koanf:"title" json:"title"`
	Description string `yaml:"description" koanf:"description" json:"description"`
	Icon        string `yaml:"icon" koanf:"icon" json:"icon"`
	Color       string `yaml:"color" koanf:"color" json:"color"`
}

type Features struct {
	SectionTitle    string    `yaml:"section_title" koanf:"section_title" json:"section_title"`
	SectionSubtitle string    `yaml:"section_subtitle" koanf:"section_subtitle" json:"section_subtitle"`
	Items           []Feature `yaml:"items" koanf:"items" json:"items"`
}

// Step is one stage of the how-it-works sequence.
type Step struct {
	ID          string `yaml:"id" koanf:"id" json:"id"`
	Number      string `yaml:"number" koanf:"number" json:"number"`
	Title       string `yaml:"title" koanf:"title" json:"title"`
	Description string `yaml:"description" koanf:"description" json:"description"`
}

type HowItWorks struct {
	SectionTitle    string `yaml:"section_title" koanf:"section_title" json:"section_title"`
	SectionSubtitle string `yaml:"section_subtitle" koanf:"section_subtitle" json:"section_subtitle"`
	Steps           []Step `yaml:"steps" koanf:"steps" json:"steps"`
}

// Spec is one technical specification tile.
type Spec struct {
	ID          string `yaml:"id" koanf:"id" json:"id"`
	Label       string `yaml:"label" koanf:"label" json:"label"`
	Value       string `yaml:"value" koanf:"value" json:"value"`
	Description string `yaml:"description" koanf:"description" json:"description"`
	Icon        string `yaml:"icon" koanf:"icon" json:"icon"`
	Color       string `yaml:"color" koanf:"color" json:"color"`
}

type Specs struct {
	SectionTitle    string `yaml:"section_title" koanf:"section_title" json:"section_title"`
	SectionSubtitle string `yaml:"section_subtitle" koanf:"section_subtitle" json:"section_subtitle"`
	Items           []Spec `yaml:"items" koanf:"items" json:"items"`
}

// Question is one FAQ entry. Answers may contain inline markdown.
type Question struct {
	ID       string `yaml:"id" koanf:"id" json:"id"`
	Question string `yaml:"question" koanf:"question" json:"question"`
	Answer   string `yaml:"answer" koanf:"answer" json:"answer"`
}

type FAQ struct {
	SectionTitle    string     `yaml:"section_title" koanf:"section_title" json:"section_title"`
	SectionSubtitle string     `yaml:"section_subtitle" koanf:"section_subtitle" json:"section_subtitle"`
	Items           []Question `yaml:"items" koanf:"items" json:"items"`
}

// IDs returns the question ids in display order.
func (f FAQ) IDs() []string {
	ids := make([]string, len(f.Items))
	for i, q := range f.Items {
		ids[i] = q.ID
	}
	return ids
}

type CTA struct {
	Badge       string `yaml:"badge" koanf:"badge" json:"badge"`
	Headline    string `yaml:"headline" koanf:"headline" json:"headline"`
	Subheadline string `yaml:"subheadline" koanf:"subheadline" json:"subheadline"`
	ButtonText  string `yaml:"button_text" koanf:"button_text" json:"button_text"`
	FormURL     string `yaml:"form_url" koanf:"form_url" json:"form_url"`
	Note        string `yaml:"note" koanf:"note" json:"note"`
	// NotifyLabel and NotifyButton label the email capture form.
	NotifyLabel  string `yaml:"notify_label" koanf:"notify_label" json:"notify_label"`
	NotifyButton string `yaml:"notify_button" koanf:"notify_button" json:"notify_button"`
}

type Footer struct {
	Description string `yaml:"description" koanf:"description" json:"description"`
	Links       []Link `yaml:"links" koanf:"links" json:"links"`
	SocialLinks []Link `yaml:"social_links" koanf:"social_links" json:"social_links"`
}

// Registry is the whole page's content. It is built once and treated as
// read-only; use Clone before changing a copy.
type Registry struct {
	Brand      Brand      `yaml:"brand" koanf:"brand" json:"brand"`
	Images     Images     `yaml:"images" koanf:"images" json:"images"`
	NavLinks   []Link     `yaml:"nav_links" koanf:"nav_links" json:"nav_links"`
	Hero       Hero       `yaml:"hero" koanf:"hero" json:"hero"`
	Features   Features   `yaml:"features" koanf:"features" json:"features"`
	HowItWorks HowItWorks `yaml:"how_it_works" koanf:"how_it_works" json:"how_it_works"`
	Specs      Specs      `yaml:"specs" koanf:"specs" json:"specs"`
	FAQ        FAQ        `yaml:"faq" koanf:"faq" json:"faq"`
	CTA        CTA        `yaml:"cta" koanf:"cta" json:"cta"`
	Footer     Footer     `yaml:"footer" koanf:"footer" json:"footer"`
}

// Clone returns a deep copy.
func (r *Registry) Clone() *Registry {
	c := *r
	c.NavLinks = cloneSlice(r.NavLinks)
	c.Hero.RotatingWords = cloneSlice(r.Hero.RotatingWords)
	c.Features.Items = cloneSlice(r.Features.Items)
	c.HowItWorks.Steps = cloneSlice(r.HowItWorks.Steps)
	c.Specs.Items = cloneSlice(r.Specs.Items)
	c.FAQ.Items = cloneSlice(r.FAQ.Items)
	c.Footer.Links = cloneSlice(r.Footer.Links)
	c.Footer.SocialLinks = cloneSlice(r.Footer.SocialLinks)
	return &c
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
