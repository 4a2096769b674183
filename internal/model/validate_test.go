package model

import (
	"errors"
	"testing"

	"github.com/Bhaskar0624/FUTURE-FS-01/internal/domain"
)

func TestValidateSection(t *testing.T) {
	cases := []struct {
		name    string
		section domain.Section
		payload string
		wantErr bool
	}{
		{"profile minimal", domain.SectionProfile, `{"name":"Ann"}`, false},
		{"profile with identity fields", domain.SectionProfile, `{"id":"x","created_at":"y","name":"Ann"}`, false},
		{"profile wrong type", domain.SectionProfile, `{"name":42}`, true},
		{"profile array rejected", domain.SectionProfile, `[]`, true},
		{"projects minimal", domain.SectionProjects, `[{"title":"P1"},{"title":"P2"}]`, false},
		{"projects empty array", domain.SectionProjects, `[]`, false},
		{"projects object rejected", domain.SectionProjects, `{"title":"P1"}`, true},
		{"projects tags wrong type", domain.SectionProjects, `[{"title":"P1","tags":"go,db"}]`, true},
		{"projects null rejected", domain.SectionProjects, `null`, true},
		{"skills items list", domain.SectionSkills, `[{"category":"Backend","items":["Go"],"sort_order":0}]`, false},
		{"experiences full row", domain.SectionExperiences, `[{"role":"Dev","company":"Acme","period":"2024","description":"","sort_order":1}]`, false},
		{"certificates full row", domain.SectionCertificates, `[{"title":"Cert","issuer":"Org","date":"2023","url":"","sort_order":0}]`, false},
		{"journey sort_order fraction", domain.SectionJourney, `[{"year":"2021","sort_order":1.5}]`, true},
		{"not json", domain.SectionJourney, `{{`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSection(tc.section, []byte(tc.payload))
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if !errors.Is(err, domain.ErrValidation) {
					t.Fatalf("error %v is not ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
