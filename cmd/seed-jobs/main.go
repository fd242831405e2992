// Command-line tool to fill the database with sample job applications.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/Gokulvemuri/job-application-manager/internal/database"
	"github.com/Gokulvemuri/job-application-manager/internal/model"
	"github.com/Gokulvemuri/job-application-manager/internal/repository"
)

var (
	companies = []string{"TechNova", "DataForge", "Acme", "Globex", "Initech", "Umbrella"}
	roles     = []string{"Backend Engineer", "Data Engineer", "SRE", "Frontend Engineer"}
	statuses  = []string{"Applied", "Phone screen", "Onsite", "Offer"}
)

// sampleJob builds the i-th sample application, spreading the application
// dates over the days before now.
func sampleJob(i int, now time.Time) model.CreatableJobInfo {
	company := companies[i%len(companies)]
	role := roles[i%len(roles)]
	status := statuses[i%len(statuses)]
	link := fmt.Sprintf("https://careers.%s.example/jobs/%d", company, 1000+i)

	return model.CreatableJobInfo{
		CompanyName: &company,
		JobRole:     &role,
		JobLink:     &link,
		JobSalary:   model.NewSalary(strconv.Itoa(70000 + 5000*(i%8))),
		DateApplied: model.NewDate(now.AddDate(0, 0, -i).Format(model.DateLayout)),
		AppStatus:   &status,
	}
}

func main() {
	count := flag.Int("n", 10, "number of job applications to insert")
	flag.Parse()

	if err := run(context.Background(), *count); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, count int) error {
	config, err := database.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("invalid database configuration: %w", err)
	}

	db, err := database.NewDBInstance(config)
	if err != nil {
		return fmt.Errorf("database failed to initialize: %w", err)
	}
	defer db.Close()

	repo := repository.NewJobApplicationRepository(db.DB)
	now := time.Now()

	for i := 0; i < count; i++ {
		rec, err := repo.Create(ctx, sampleJob(i, now))
		if err != nil {
			return fmt.Errorf("failed to create job application: %w", err)
		}
		fmt.Printf("Created job application %d: %s\n", rec.ID, *rec.CompanyName)
	}

	fmt.Println("======================================")
	fmt.Printf("Inserted %d job applications\n", count)
	return nil
}
