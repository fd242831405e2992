// Command-line tool to clean the database by truncating the job application table.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/lib/pq"

	"github.com/Gokulvemuri/job-application-manager/internal/database"
	"github.com/Gokulvemuri/job-application-manager/internal/model"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// confirmed reads one line and reports whether it says yes
func confirmed(in io.Reader) (bool, error) {
	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(strings.ToLower(input)) == "yes", nil
}

// truncateSQL empties table and restarts its id sequence
func truncateSQL(table string) string {
	return "TRUNCATE TABLE " + pq.QuoteIdentifier(table) + " RESTART IDENTITY"
}

func run(in io.Reader, out io.Writer) error {

	table := (&model.JobApplication{}).TableName()

	// Warning message
	fmt.Fprintf(out, "⚠️ WARNING: This command will DELETE ALL ROWS of the '%s' table and reset its ids.\n", table)
	fmt.Fprintln(out, "This action is irreversible. Do you want to continue? (yes/no): ")

	// Ask for confirmation
	ok, err := confirmed(in)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "Operation cancelled.")
		return nil
	}

	config, err := database.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("invalid database configuration: %w", err)
	}

	db, err := database.NewDBInstance(config)
	if err != nil {
		return fmt.Errorf("database failed to initialize: %w", err)
	}
	defer db.Close()

	if err := db.Exec(truncateSQL(table)).Error; err != nil {
		return fmt.Errorf("failed to execute truncate command: %w", err)
	}

	fmt.Fprintf(out, "✅ Table %s truncated successfully.\n", table)
	return nil
}
