package model

import "time"

// Section names a category of portfolio content.
type Section string

const (
	SectionPersonal       Section = "personal"
	SectionExperience     Section = "experience"
	SectionSkills         Section = "skills"
	SectionCertifications Section = "certifications"
	SectionCourses        Section = "courses"
	SectionEducation      Section = "education"
	SectionProjects       Section = "projects"
)

// Sections lists the known sections in the order they appear on the site.
var Sections = []Section{
	SectionPersonal,
	SectionExperience,
	SectionSkills,
	SectionCertifications,
	SectionCourses,
	SectionEducation,
	SectionProjects,
}

// Valid reports whether s is a known section.
func (s Section) Valid() bool {
	for _, known := range Sections {
		if s == known {
			return true
		}
	}
	return false
}

// PortfolioConfig is a stored, editable copy of one portfolio section.
// There is at most one document per section.
type PortfolioConfig struct {
	ID          string         `json:"id" bson:"id"`
	Section     Section        `json:"section" bson:"section"`
	Data        map[string]any `json:"data" bson:"data"`
	LastUpdated time.Time      `json:"last_updated" bson:"last_updated"`
}
