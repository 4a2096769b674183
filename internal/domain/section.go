package domain

import "fmt"

// Section names one top-level collection in the content snapshot. The
// string value doubles as the table name in the Postgres store and the
// top-level key in the JSON file store.
type Section string

const (
	SectionProfile      Section = "profile"
	SectionProjects     Section = "projects"
	SectionExperiences  Section = "experiences"
	SectionSkills       Section = "skills"
	SectionCertificates Section = "certificates"
	SectionJourney      Section = "journey"
)

// Sections lists every valid section, profile first.
var Sections = []Section{
	SectionProfile,
	SectionProjects,
	SectionExperiences,
	SectionSkills,
	SectionCertificates,
	SectionJourney,
}

// ParseSection validates a caller-supplied section name.
func ParseSection(name string) (Section, error) {
	for _, s := range Sections {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: unknown section %q", ErrValidation, name)
}

func (s Section) String() string { return string(s) }

// IsSingleton reports whether the section holds exactly one record and is
// written with an in-place update rather than a full-array replace.
func (s Section) IsSingleton() bool { return s == SectionProfile }
