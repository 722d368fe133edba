package usecase

import (
	"context"
	"strings"

	"github.com/xavierca1/leadmarket/internal/entity"
)

// DuplicateGroup is transient detector output, never persisted. The primary
// is the first lead encountered; Members includes it.
type DuplicateGroup struct {
	Primary *entity.Lead
	Members []*entity.Lead
}

// FindDuplicatesUseCase scans the lead population pairwise and clusters
// matching records.
type FindDuplicatesUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	Scorer   *ScoringEngine
}

func NewFindDuplicatesUseCase(leadRepo entity.LeadRepositoryInterface, scorer *ScoringEngine) *FindDuplicatesUseCase {
	return &FindDuplicatesUseCase{LeadRepo: leadRepo, Scorer: scorer}
}

func (uc *FindDuplicatesUseCase) Execute(ctx context.Context, input FindDuplicatesInput) (*FindDuplicatesOutput, error) {
	filter := entity.LeadFilter{VendorID: input.VendorID}
	if input.Window > 0 {
		filter.Limit = input.Window
	}

	leads, err := uc.LeadRepo.List(ctx, filter)
	if err != nil {
		return nil, &TechnicalError{Code: "STORAGE", Message: err.Error()}
	}

	groups := GroupDuplicates(leads)

	out := &FindDuplicatesOutput{Groups: make([]DuplicateGroupOutput, 0, len(groups))}
	for _, g := range groups {
		members := make([]DuplicateLeadSummary, 0, len(g.Members))
		for _, lead := range g.Members {
			members = append(members, DuplicateLeadSummary{
				ID:          lead.ID,
				FullName:    lead.FullName,
				Email:       lead.Email,
				CompanyName: lead.CompanyName,
				LeadScore:   uc.Scorer.Score(lead).OverallScore,
			})
		}
		out.Groups = append(out.Groups, DuplicateGroupOutput{
			PrimaryID: g.Primary.ID,
			Count:     len(g.Members),
			Leads:     members,
		})
		out.TotalDuplicates += len(g.Members)
	}
	out.TotalGroups = len(groups)

	return out, nil
}

// GroupDuplicates iterates leads in their given order; each not-yet-grouped
// lead becomes the primary of a candidate group and all later ungrouped leads
// are compared against that primary only. A later lead that would match a
// non-primary member but not the primary is NOT pulled into the group: chains
// of weak matches do not close transitively. That is a known limitation kept
// on purpose, and tests assert it.
func GroupDuplicates(leads []*entity.Lead) []DuplicateGroup {
	grouped := make(map[string]bool, len(leads))
	var groups []DuplicateGroup

	for i, primary := range leads {
		if grouped[primary.ID] {
			continue
		}

		members := []*entity.Lead{primary}
		for _, candidate := range leads[i+1:] {
			if grouped[candidate.ID] {
				continue
			}
			if IsDuplicatePair(primary, candidate) {
				members = append(members, candidate)
				grouped[candidate.ID] = true
			}
		}

		if len(members) > 1 {
			grouped[primary.ID] = true
			groups = append(groups, DuplicateGroup{Primary: primary, Members: members})
		}
	}

	return groups
}

// IsDuplicatePair applies the three match rules in decreasing strictness;
// any one match marks the pair. All comparisons are case-insensitive.
func IsDuplicatePair(a, b *entity.Lead) bool {
	emailA := strings.ToLower(a.Email)
	emailB := strings.ToLower(b.Email)
	nameA := strings.ToLower(a.FullName)
	nameB := strings.ToLower(b.FullName)

	// Rule A: exact email match.
	if emailA != "" && emailA == emailB {
		return true
	}

	// Rule B: same email local part and same full name.
	localA := emailLocalPart(emailA)
	localB := emailLocalPart(emailB)
	if localA != "" && localA == localB && nameA != "" && nameA == nameB {
		return true
	}

	// Rule C: same full name and same company.
	companyA := strings.ToLower(a.CompanyName)
	companyB := strings.ToLower(b.CompanyName)
	if nameA != "" && nameA == nameB && companyA != "" && companyA == companyB {
		return true
	}

	return false
}

func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}
