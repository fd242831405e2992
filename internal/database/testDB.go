package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	m "github.com/Gokulvemuri/job-application-manager/internal/model"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded job applications, oldest first
var (
	TestJobApp1 m.JobApplication
	TestJobApp2 m.JobApplication
	TestJobApp3 m.JobApplication
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	var dbContainer *postgres.PostgresContainer
	err := recoverPanic(func() (err error) {
		dbContainer, err = postgres.Run(
			context.Background(),
			"postgres:16-alpine",
			postgres.WithDatabase(dbName),
			postgres.WithUsername(dbUser),
			postgres.WithPassword(dbPwd),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		UseConstr:   true,
		Constr:      fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
		AutoMigrate: true,
		Pool: PoolConfig{
			MaxOpenConns:    5,
			MaxIdleConns:    2,
			ConnMaxLifetime: time.Minute,
		},
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// recoverPanic runs fn and returns a panic raised inside it as an error.
// The docker client panics when no docker host can be found.
func recoverPanic(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("start test container: %v", r)
		}
	}()
	return fn()
}

// seedTestData inserts three job applications if the table is empty.
func seedTestData(db *DBinstanceStruct) error {
	var count int64
	if err := db.Model(&m.JobApplication{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return loadTestData(db)
	}

	apps := []m.JobApplication{
		{
			CreatableJobInfo: m.CreatableJobInfo{
				CompanyName: ptr("TechNova"),
				JobRole:     ptr("Backend Engineer"),
				JobLink:     ptr("https://technova.example.com/careers/1"),
				JobSalary:   m.NewSalary("120000"),
				DateApplied: m.NewDate("2024-01-15"),
				AppStatus:   ptr("Applied"),
			},
		},
		{
			CreatableJobInfo: m.CreatableJobInfo{
				CompanyName: ptr("DataForge"),
				JobRole:     ptr("Data Analyst"),
				DateApplied: m.NewDate("2024-02-01"),
				AppStatus:   ptr("Interviewing"),
			},
			JobStatusFlags: m.JobStatusFlags{
				StatusInterviewed: ptr(true),
			},
		},
		{
			CreatableJobInfo: m.CreatableJobInfo{
				CompanyName: ptr("Acme"),
				JobRole:     ptr("Platform Engineer"),
				JobSalary:   m.NewSalary("$95k"),
				AppStatus:   ptr("Rejected"),
			},
			JobStatusFlags: m.JobStatusFlags{
				StatusRejected:    ptr(true),
				StatusInterviewed: ptr(true),
				StatusTechnical:   ptr(true),
				StatusOffer:       ptr(false),
			},
		},
	}

	if err := db.Create(&apps).Error; err != nil {
		return err
	}

	TestJobApp1 = apps[0]
	TestJobApp2 = apps[1]
	TestJobApp3 = apps[2]

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var apps []m.JobApplication
	if err := db.Order("id ASC").Limit(3).Find(&apps).Error; err != nil {
		return err
	}
	if len(apps) > 0 {
		TestJobApp1 = apps[0]
	}
	if len(apps) > 1 {
		TestJobApp2 = apps[1]
	}
	if len(apps) > 2 {
		TestJobApp3 = apps[2]
	}
	return nil
}

// ptr helper
func ptr[T any](v T) *T { return &v }
