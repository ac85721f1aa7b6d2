package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"recruitpro_backend/internal/auth"
	"recruitpro_backend/internal/config"
	"recruitpro_backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// NewTestDB opens a fresh in-memory database with the full schema.
// Each call gets its own database so parallel tests do not interfere.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Lead{},
		&models.AssignedLead{},
		&models.User{},
		&models.Admin{},
		&models.Client{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	return db
}

// InitConfig installs a minimal in-memory configuration for tests that
// reach the config package (token generation, upload limits).
func InitConfig(t *testing.T) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Import.MaxFileSize = 10 * 1024 * 1024
	config.AppConfig = cfg
}

// CreateRecruiter stores a recruiter with a hashed password.
func CreateRecruiter(t *testing.T, db *gorm.DB, recruiterID, fullName string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		FullName:      fullName,
		MobileNumber:  "9990001111",
		City:          "Pune",
		Qualification: "B.Com",
		Type:          models.UserTypeRecruiter,
		RecruiterID:   recruiterID,
		PasswordHash:  hash,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create recruiter %s: %v", recruiterID, err)
	}
	return user
}

// CreateAdmin stores an admin with a hashed password.
func CreateAdmin(t *testing.T, db *gorm.DB, email, password string) *models.Admin {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	admin := &models.Admin{
		Email:        email,
		PasswordHash: hash,
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("failed to create admin %s: %v", email, err)
	}
	return admin
}

// CreatePendingLead stores one pending lead.
func CreatePendingLead(t *testing.T, db *gorm.DB, leadID, name, phone string) *models.Lead {
	t.Helper()

	lead := &models.Lead{
		LeadID:        leadID,
		CandidateName: name,
		PhoneNumber:   phone,
		Email:         "candidate@example.com",
		JobCity:       "Mumbai",
	}
	if err := db.Create(lead).Error; err != nil {
		t.Fatalf("failed to create pending lead %s: %v", leadID, err)
	}
	return lead
}

// CreateAssignedLead stores an assigned lead bound to a recruiter.
func CreateAssignedLead(t *testing.T, db *gorm.DB, leadID, name, recruiterID string) *models.AssignedLead {
	t.Helper()

	lead := &models.AssignedLead{
		LeadID:        leadID,
		CandidateName: name,
		PhoneNumber:   "8880001111",
		Email:         "candidate@example.com",
		AssignedTo:    recruiterID,
	}
	if err := db.Create(lead).Error; err != nil {
		t.Fatalf("failed to create assigned lead %s: %v", leadID, err)
	}
	return lead
}
