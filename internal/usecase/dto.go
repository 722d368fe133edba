package usecase

import "github.com/xavierca1/leadmarket/internal/entity"

// RawLeadInput is what the ingestion collaborator hands over: every field is
// already decoded to a string, empty meaning absent.
type RawLeadInput struct {
	Title       string   `json:"title"`
	FullName    string   `json:"full_name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	JobTitle    string   `json:"job_title"`
	CompanyName string   `json:"company_name"`
	Location    string   `json:"location"`
	Domain      string   `json:"domain"`
	Industry    string   `json:"industry"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Tags        []string `json:"tags,omitempty"`
}

// RawLeadFromEntity rebuilds validator input from a stored lead so re-validation
// runs the same rules the ingestion path ran.
func RawLeadFromEntity(lead *entity.Lead) RawLeadInput {
	return RawLeadInput{
		Title:       lead.Title,
		FullName:    lead.FullName,
		Email:       lead.Email,
		Phone:       lead.Phone,
		JobTitle:    lead.JobTitle,
		CompanyName: lead.CompanyName,
		Location:    lead.Location,
		Domain:      lead.Domain,
		Industry:    lead.Industry,
		Description: lead.Description,
		Price:       formatPrice(lead.Price),
		Tags:        lead.Tags,
	}
}

type CreateLeadInput struct {
	VendorID string       `json:"vendor_id"`
	Lead     RawLeadInput `json:"lead"`
}

type CreateLeadOutput struct {
	LeadID             string                  `json:"lead_id"`
	LeadScore          float64                 `json:"lead_score"`
	QualityGrade       string                  `json:"quality_grade"`
	ValidationScore    float64                 `json:"validation_score"`
	ValidationStatus   entity.ValidationStatus `json:"validation_status"`
	ApprovalStatus     entity.ApprovalStatus   `json:"approval_status"`
	ValidationRecordID string                  `json:"validation_record_id"`
	Issues             []string                `json:"issues,omitempty"`
}

type ValidateLeadInput struct {
	LeadID string `json:"lead_id"`
	Notes  string `json:"notes,omitempty"`
}

type ValidateLeadOutput struct {
	LeadID             string                  `json:"lead_id"`
	Score              float64                 `json:"score"`
	Status             entity.ValidationStatus `json:"status"`
	Issues             []string                `json:"issues,omitempty"`
	ValidationRecordID string                  `json:"validation_record_id"`
}

type FindDuplicatesInput struct {
	VendorID string `json:"vendor_id,omitempty"`
	Window   int    `json:"window,omitempty"` // 0 means the full population
}

type DuplicateLeadSummary struct {
	ID          string  `json:"id"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	CompanyName string  `json:"company_name"`
	LeadScore   float64 `json:"lead_score"`
}

type DuplicateGroupOutput struct {
	PrimaryID string                 `json:"primary_id"`
	Count     int                    `json:"count"`
	Leads     []DuplicateLeadSummary `json:"leads"`
}

type FindDuplicatesOutput struct {
	TotalGroups     int                    `json:"total_duplicate_groups"`
	TotalDuplicates int                    `json:"total_duplicate_leads"`
	Groups          []DuplicateGroupOutput `json:"duplicates"`
}

type MergeDuplicatesInput struct {
	KeepLeadID   string   `json:"keep_lead_id"`
	DuplicateIDs []string `json:"duplicate_ids"`
}

type MergeDuplicatesOutput struct {
	KeptLeadID   string `json:"kept_lead_id"`
	DeletedCount int    `json:"deleted_count"`
}

type ApproveLeadInput struct {
	LeadID     string `json:"lead_id"`
	ApproverID string `json:"approver_id"`
	Notes      string `json:"notes,omitempty"`
}

type RejectLeadInput struct {
	LeadID     string `json:"lead_id"`
	ApproverID string `json:"approver_id"`
	Reason     string `json:"reason"`
}

type ResubmitLeadInput struct {
	LeadID     string `json:"lead_id"`
	ApproverID string `json:"approver_id"`
	Notes      string `json:"notes,omitempty"`
}

type ApprovalOutput struct {
	LeadID           string                `json:"lead_id"`
	Status           entity.ApprovalStatus `json:"status"`
	ListingStatus    entity.ListingStatus  `json:"listing_status"`
	ApprovalRecordID string                `json:"approval_record_id"`
}

type LeadUpdates struct {
	Price         *float64              `json:"price,omitempty"`
	Industry      *string               `json:"industry,omitempty"`
	Tags          []string              `json:"tags,omitempty"`
	ListingStatus *entity.ListingStatus `json:"listing_status,omitempty"`
}

type BulkUpdateInput struct {
	LeadIDs []string    `json:"lead_ids"`
	Updates LeadUpdates `json:"updates"`
}

type BulkItemFailure struct {
	LeadID string `json:"lead_id,omitempty"`
	Row    int    `json:"row,omitempty"`
	Reason string `json:"reason"`
}

type BulkUpdateOutput struct {
	UpdatedCount   int               `json:"updated_count"`
	Failed         []BulkItemFailure `json:"failed,omitempty"`
	TotalProcessed int               `json:"total_processed"`
}

type BulkImportInput struct {
	VendorID string         `json:"vendor_id"`
	Rows     []RawLeadInput `json:"rows"`
}

type BulkImportOutput struct {
	ImportedCount int               `json:"imported_count"`
	Failed        []BulkItemFailure `json:"failed,omitempty"`
	TotalRows     int               `json:"total_rows"`
}

type PipelineSummary struct {
	StatusCounts        map[string]int `json:"status_counts"`
	ScoreBands          map[string]int `json:"score_bands"`
	TotalLeads          int            `json:"total_leads"`
	TotalAvailableValue float64        `json:"total_available_value"`
}
