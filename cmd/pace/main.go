package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"pace_af_tool/internal/app"
	"pace_af_tool/internal/domain/board"
	"pace_af_tool/internal/domain/member"
	"pace_af_tool/internal/infra/config"
	"pace_af_tool/internal/infra/logger"
	"pace_af_tool/internal/infra/roster"
)

func main() {
	var (
		rosterPath = flag.String("roster", "", "path to the roster file (.csv or .xlsx)")
		cycleGrade = flag.String("cycle", "", "promotion cycle grade (e.g. SSG)")
		cycleYear  = flag.Int("year", time.Now().Year(), "promotion cycle year")
	)
	flag.Parse()

	mainLogger := log.New(os.Stdout, "MAIN: ", log.LstdFlags|log.Lshortfile)

	if *rosterPath == "" || *cycleGrade == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not load application configuration: %v", err)
	}
	logger.Init(cfg)
	mainLogger.Printf("INFO: Configuration loaded. LogLevel: %s, Environment: %s", cfg.LogLevel, cfg.Environment)

	policy, err := config.LoadPolicy(cfg.PolicyFile)
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not load policy: %v", err)
	}

	records, err := roster.Load(*rosterPath)
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not load roster %s: %v", *rosterPath, err)
	}
	mainLogger.Printf("INFO: Roster loaded: %d records.", len(records))

	hytStart, hytEnd := policy.HYTWindow()
	classifier := app.NewRosterClassifier(
		board.NewFilter(hytStart, hytEnd),
		policy.SmallUnitThreshold,
		logger.Get(),
	)

	result, err := classifier.Classify(records, member.Grade(*cycleGrade), *cycleYear)
	if err != nil {
		mainLogger.Fatalf("FATAL: Classification failed: %v", err)
	}

	printSummary(records, result, member.Grade(*cycleGrade), *cycleYear)
}

func printSummary(records []member.Record, result *app.Classification, cycle member.Grade, year int) {
	fmt.Printf("\n%s cycle %d: %d eligible, %d below-the-zone, %d ineligible, %d with discrepancies, %d in small units, %d units\n",
		cycle, year,
		len(result.Eligible), len(result.BelowTheZone), len(result.Ineligible),
		len(result.Discrepancy), len(result.SmallUnitEligible), len(result.UnitNames))

	if len(result.Ineligible) > 0 {
		fmt.Println("\nIneligible:")
		for _, i := range result.Ineligible {
			fmt.Printf("  %-30s %s\n", records[i].FullName, result.Reasons[i])
		}
	}
	if len(result.Discrepancy) > 0 {
		fmt.Println("\nEligible with discrepancy:")
		for _, i := range result.Discrepancy {
			fmt.Printf("  %-30s %s\n", records[i].FullName, result.Reasons[i])
		}
	}
	if len(result.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Printf("  %s\n", w)
		}
	}
}
