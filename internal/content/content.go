// Package content holds the static portfolio payload served by the API.
//
// The payload is compiled into the binary from portfolio.yaml and decoded
// once; callers must treat the returned values as read-only.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/nchindhamani/portfolio-api/internal/model"
)

//go:embed portfolio.yaml
var portfolioYAML []byte

type Personal struct {
	Name     string `json:"name" yaml:"name"`
	Title    string `json:"title" yaml:"title"`
	Location string `json:"location" yaml:"location"`
	Email    string `json:"email" yaml:"email"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
	Photo    string `json:"photo" yaml:"photo"`
	Tagline  string `json:"tagline" yaml:"tagline"`
	Summary  string `json:"summary" yaml:"summary"`
}

type Experience struct {
	ID       int             `json:"id" yaml:"id"`
	Company  string          `json:"company" yaml:"company"`
	Role     string          `json:"role" yaml:"role"`
	Duration string          `json:"duration" yaml:"duration"`
	Location string          `json:"location" yaml:"location"`
	Projects []ClientProject `json:"projects" yaml:"projects"`
}

// ClientProject is an engagement within an Experience entry.
type ClientProject struct {
	Client       string   `json:"client" yaml:"client"`
	Role         string   `json:"role" yaml:"role"`
	Duration     string   `json:"duration" yaml:"duration"`
	Location     string   `json:"location" yaml:"location"`
	Achievements []string `json:"achievements" yaml:"achievements"`
	TechStack    []string `json:"techStack" yaml:"techStack"`
}

type Skills struct {
	Languages  []string `json:"languages" yaml:"languages"`
	Frameworks []string `json:"frameworks" yaml:"frameworks"`
	Databases  []string `json:"databases" yaml:"databases"`
	Tools      []string `json:"tools" yaml:"tools"`
	Cloud      []string `json:"cloud" yaml:"cloud"`
	Others     []string `json:"others" yaml:"others"`
}

type Certification struct {
	Title  string `json:"title" yaml:"title"`
	Year   string `json:"year" yaml:"year"`
	Issuer string `json:"issuer" yaml:"issuer"`
}

type Course struct {
	Title    string `json:"title" yaml:"title"`
	Platform string `json:"platform" yaml:"platform"`
}

type Education struct {
	Degree     string `json:"degree" yaml:"degree"`
	University string `json:"university" yaml:"university"`
	Duration   string `json:"duration" yaml:"duration"`
	CGPA       string `json:"cgpa" yaml:"cgpa"`
}

type Project struct {
	Title        string   `json:"title" yaml:"title"`
	Client       string   `json:"client" yaml:"client"`
	Description  string   `json:"description" yaml:"description"`
	TechStack    []string `json:"techStack" yaml:"techStack"`
	Achievements []string `json:"achievements" yaml:"achievements"`
}

// Portfolio is the full payload. Field order matches model.Sections so the
// JSON encoding lists sections in site order.
type Portfolio struct {
	Personal       Personal        `json:"personal" yaml:"personal"`
	Experience     []Experience    `json:"experience" yaml:"experience"`
	Skills         Skills          `json:"skills" yaml:"skills"`
	Certifications []Certification `json:"certifications" yaml:"certifications"`
	Courses        []Course        `json:"courses" yaml:"courses"`
	Education      Education       `json:"education" yaml:"education"`
	Projects       []Project       `json:"projects" yaml:"projects"`
}

// Section returns the payload of the named section.
func (p *Portfolio) Section(name model.Section) (any, bool) {
	switch name {
	case model.SectionPersonal:
		return p.Personal, true
	case model.SectionExperience:
		return p.Experience, true
	case model.SectionSkills:
		return p.Skills, true
	case model.SectionCertifications:
		return p.Certifications, true
	case model.SectionCourses:
		return p.Courses, true
	case model.SectionEducation:
		return p.Education, true
	case model.SectionProjects:
		return p.Projects, true
	}
	return nil, false
}

var load = sync.OnceValues(func() (*Portfolio, error) {
	return Parse(portfolioYAML)
})

// Load returns the embedded portfolio, decoding it on first use.
func Load() (*Portfolio, error) {
	return load()
}

// Parse decodes a portfolio document. Unknown keys are an error.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode portfolio content: %w", err)
	}
	return &p, nil
}
