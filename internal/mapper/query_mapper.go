package mapper

import (
	"legal-advisor-be/internal/dto"
	"legal-advisor-be/pkg/store"
)

func ToReferenceDTOs(refs []store.Reference) []dto.ReferenceDTO {
	out := make([]dto.ReferenceDTO, len(refs))
	for i, r := range refs {
		out[i] = dto.ReferenceDTO{
			Act:           r.Act,
			SectionNumber: r.SectionNumber,
			Summary:       r.Summary,
			FullText:      r.FullText,
		}
	}
	return out
}

func ToCaseDTOs(cases []store.Case) []dto.CaseDTO {
	out := make([]dto.CaseDTO, len(cases))
	for i, c := range cases {
		out[i] = dto.CaseDTO{
			Title: c.Title,
			URL:   c.URL,
		}
	}
	return out
}
