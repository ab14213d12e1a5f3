package main

import (
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/logischolar/analytics-backend/internal/config"
	"github.com/logischolar/analytics-backend/internal/dataset"
	"github.com/logischolar/analytics-backend/internal/logger"
	"github.com/logischolar/analytics-backend/internal/model"
)

// generate-dataset synthesizes the university_core_data.csv file the server
// expects in its working directory. Register numbers start at 10001 and run
// sequentially, matching the 10001-20000 lookup range of the search view.

const firstRegisterNo = 10001

var firstNames = []string{
	"Aarav", "Ananya", "Arjun", "Diya", "Ishaan", "Kavya", "Karthik", "Meera",
	"Nikhil", "Priya", "Rahul", "Sanjana", "Surya", "Tanvi", "Vikram", "Yamini",
	"Aditya", "Bhavana", "Deepak", "Gayathri", "Harish", "Lakshmi", "Manoj", "Nandini",
}

var lastNames = []string{
	"Iyer", "Kumar", "Menon", "Nair", "Pillai", "Raj", "Rao", "Reddy",
	"Sharma", "Subramanian", "Varma", "Venkatesh",
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	count := 500
	if v := os.Getenv("DATASET_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 10000 {
			log.Fatal().Str("DATASET_SIZE", v).Msg("DATASET_SIZE must be an integer between 1 and 10000")
		}
		count = n
	}

	fmt.Printf("=== Generating %d student records ===\n", count)

	departments := model.DepartmentCodes()
	records := make([]model.StudentRecord, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, randomRecord(firstRegisterNo+i, departments))
		if (i+1)%100 == 0 {
			fmt.Printf("Generated %d records...\n", i+1)
		}
	}

	if err := dataset.WriteFile(cfg.DataFile, records); err != nil {
		log.Fatal().Err(err).Str("file", cfg.DataFile).Msg("Failed to write dataset")
	}

	fmt.Printf("\nDone! Wrote %d records to %s.\n", count, cfg.DataFile)
}

func randomRecord(registerNo int, departments []model.Department) model.StudentRecord {
	mark1 := float64(rand.IntN(66) + 35) // 35-100
	mark2 := float64(rand.IntN(66) + 35)
	mark3 := float64(rand.IntN(66) + 35)
	attendance := round1(55 + rand.Float64()*45) // 55-100, one decimal

	// GPA loosely tracks the weighted marks with some noise, clamped to 0-10.
	gpa := (mark1*0.35+mark2*0.25+mark3*0.20+attendance*0.20)/10 + rand.Float64()*1.2 - 0.6
	gpa = round2(math.Min(10, math.Max(0, gpa)))

	return model.StudentRecord{
		RegisterNo:    strconv.Itoa(registerNo),
		Name:          randomName(),
		Department:    departments[rand.IntN(len(departments))],
		Mark1:         mark1,
		Mark2:         mark2,
		Mark3:         mark3,
		AttendancePct: attendance,
		CurrentGPA:    gpa,
	}
}

func randomName() string {
	return firstNames[rand.IntN(len(firstNames))] + " " + lastNames[rand.IntN(len(lastNames))]
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
