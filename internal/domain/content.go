package domain

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Branding is the site identity block rendered in the header and
// footer shells.
type Branding struct {
	Name    string `yaml:"name" json:"name"`
	Tagline string `yaml:"tagline" json:"tagline"`
	LogoURL string `yaml:"logo_url" json:"logoUrl"`
}

type FooterLink struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

type FooterSection struct {
	Title string       `yaml:"title" json:"title"`
	Links []FooterLink `yaml:"links" json:"links"`
}

type SocialLink struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

type Footer struct {
	Sections  []FooterSection `yaml:"sections" json:"sections"`
	Contact   []string        `yaml:"contact" json:"contact"`
	Social    []SocialLink    `yaml:"social" json:"social"`
	Copyright string          `yaml:"copyright" json:"copyright"`
}

// Technology is one selectable entry of the form's technology catalog.
type Technology struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
}

// SiteContent is the marketing content served to the site shell. It is
// data, not markup; layout and styling stay client-side.
type SiteContent struct {
	Branding     Branding     `yaml:"branding" json:"branding"`
	Footer       Footer       `yaml:"footer" json:"footer"`
	Technologies []Technology `yaml:"technologies" json:"technologies"`
}

// DefaultSiteContent is used when no content file is configured, so the
// shell endpoints always answer.
var DefaultSiteContent = SiteContent{
	Branding: Branding{
		Name:    "NMT Solutions",
		Tagline: "IoT, Web & Mobile solutions",
	},
	Footer: Footer{
		Copyright: "NMT Solutions",
	},
	Technologies: []Technology{
		{ID: "Go", Label: "Go"},
		{ID: "React", Label: "React"},
		{ID: "Flutter", Label: "Flutter"},
		{ID: "NodeJS", Label: "NodeJS"},
		{ID: "Arduino", Label: "Arduino"},
	},
}

// LoadSiteContent reads the yaml content document.
func LoadSiteContent(path string) (*SiteContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read site content")
	}
	content := new(SiteContent)
	if err := yaml.Unmarshal(data, content); err != nil {
		return nil, errors.Wrap(err, "parse site content")
	}
	return content, nil
}
