package services

import (
	"fmt"
	"io"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"recruitpro_backend/internal/apperrors"
	"recruitpro_backend/internal/logger"
	"recruitpro_backend/internal/metrics"
	"recruitpro_backend/internal/models"
	"recruitpro_backend/internal/repositories"
	"recruitpro_backend/internal/services/dto"
)

// Spreadsheet column headers as the upload template names them.
const (
	colCandidateName = "Candidate Name"
	colPhoneNumber   = "Phone number"
	colEmail         = "Email ID"
	colJobCity       = "Job city"
	colJobArea       = "Job Area"
	colGender        = "Gender"
	colAge           = "Age"
	colAppliedOn     = "Applied on"
	colCandidateCity = "Candidate city"
	colCandidateArea = "Candidate Area"
	colEducation     = "Education"
	colHighestDegree = "Highest Degree"
)

type ImportService interface {
	// BulkImport parses an .xlsx/.xls upload into pending leads,
	// skipping rows whose (candidate name, phone number) pair already
	// exists in the pending store.
	BulkImport(file io.Reader) (*dto.ImportResult, error)
}

type ImportServiceImpl struct {
	leadRepo repositories.LeadRepository
}

func NewImportService(leadRepo repositories.LeadRepository) ImportService {
	return &ImportServiceImpl{leadRepo: leadRepo}
}

func (s *ImportServiceImpl) BulkImport(file io.Reader) (*dto.ImportResult, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, apperrors.ErrUnsupportedFile.WithDetails(err.Error())
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewBadRequestError("Spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(rows) < 2 {
		return &dto.ImportResult{Message: importMessage(0, 0)}, nil
	}

	header := headerIndex(rows[0])
	candidates := make([]models.Lead, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		candidates = append(candidates, s.rowToLead(header, row))
	}

	pairs := make([]repositories.NamePhonePair, len(candidates))
	for i, lead := range candidates {
		pairs[i] = repositories.NamePhonePair{
			CandidateName: lead.CandidateName,
			PhoneNumber:   lead.PhoneNumber,
		}
	}

	existing, err := s.leadRepo.FindExistingPairs(pairs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	existingSet := make(map[string]struct{}, len(existing))
	for _, lead := range existing {
		existingSet[lead.CandidateName+"_"+lead.PhoneNumber] = struct{}{}
	}

	newLeads := make([]models.Lead, 0, len(candidates))
	for _, lead := range candidates {
		if _, dup := existingSet[lead.CandidateName+"_"+lead.PhoneNumber]; dup {
			continue
		}
		newLeads = append(newLeads, lead)
	}

	if err := s.leadRepo.InsertBatch(newLeads); err != nil {
		return nil, apperrors.InternalError(err)
	}

	inserted := len(newLeads)
	skipped := len(candidates) - inserted
	metrics.RecordImport(inserted, skipped)
	logger.Info("bulk import completed", "inserted", inserted, "skipped", skipped)

	return &dto.ImportResult{
		Inserted: inserted,
		Skipped:  skipped,
		Message:  importMessage(inserted, skipped),
	}, nil
}

func importMessage(inserted, skipped int) string {
	return fmt.Sprintf("Upload completed. %d new leads added, %d duplicates skipped.", inserted, skipped)
}

func (s *ImportServiceImpl) rowToLead(header map[string]int, row []string) models.Lead {
	now := time.Now()
	return models.Lead{
		LeadID:        GenerateLeadID(),
		CandidateName: cellOrNA(header, row, colCandidateName),
		PhoneNumber:   cellOrNA(header, row, colPhoneNumber),
		Email:         cellOrNA(header, row, colEmail),
		JobCity:       cell(header, row, colJobCity),
		JobArea:       cell(header, row, colJobArea),
		Gender:        cell(header, row, colGender),
		Age:           parseAge(cell(header, row, colAge)),
		AppliedOn:     ParseAppliedDate(cell(header, row, colAppliedOn)),
		CandidateCity: cell(header, row, colCandidateCity),
		CandidateArea: cell(header, row, colCandidateArea),
		Education:     cell(header, row, colEducation),
		HighestDegree: cell(header, row, colHighestDegree),
		BaseModel: models.BaseModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// GenerateLeadID builds a synthetic lead identifier. The random suffix
// makes same-millisecond collisions unlikely, which matches how the
// import treats them: negligible, not impossible.
func GenerateLeadID() string {
	return fmt.Sprintf("LEAD_%d_%d", time.Now().UnixMilli(), rand.Intn(1000))
}

var trailingTZName = regexp.MustCompile(` [A-Z]+$`)

var appliedDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"2-Jan-2006",
	"Jan 2, 2006",
	time.RFC3339,
	"Mon Jan 2 2006 15:04:05",
}

// ParseAppliedDate parses the free-text "Applied on" column, tolerating
// a trailing timezone-name suffix like "IST". Unparseable values yield
// nil rather than an error.
func ParseAppliedDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	cleaned := trailingTZName.ReplaceAllString(value, "")
	for _, layout := range appliedDateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return &t
		}
	}
	return nil
}

func headerIndex(headerRow []string) map[string]int {
	index := make(map[string]int, len(headerRow))
	for i, name := range headerRow {
		index[strings.TrimSpace(name)] = i
	}
	return index
}

func cell(header map[string]int, row []string, column string) string {
	i, ok := header[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func cellOrNA(header map[string]int, row []string, column string) string {
	if v := cell(header, row, column); v != "" {
		return v
	}
	return "N/A"
}

func parseAge(value string) *int {
	if value == "" {
		return nil
	}
	age, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &age
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
