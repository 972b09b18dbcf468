// file: cmd/recalc/main.go
// Rekalkulasi batch dari terminal: putar ulang agregasi semua peserta satu
// event (opsional difilter formasi) memakai standar master, tanpa override.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"asesmenku_backend/internals/configs"
	database "asesmenku_backend/internals/databases"
	"asesmenku_backend/internals/features/assessment/repository"
	scoringService "asesmenku_backend/internals/features/assessment/scoring/service"
	standardsService "asesmenku_backend/internals/features/assessment/standards/service"
	templateService "asesmenku_backend/internals/features/assessment/templates/service"
)

func main() {
	eventFlag := flag.String("event", "", "ID event asesmen (wajib)")
	formationFlag := flag.String("formation", "", "ID formasi jabatan (opsional, filter)")
	flag.Parse()

	eventID, err := uuid.Parse(*eventFlag)
	if err != nil {
		log.Fatalf("❌ -event wajib UUID yang valid: %v", err)
	}

	var formationID *uuid.UUID
	if *formationFlag != "" {
		id, err := uuid.Parse(*formationFlag)
		if err != nil {
			log.Fatalf("❌ -formation harus UUID yang valid: %v", err)
		}
		formationID = &id
	}

	configs.LoadEnv()
	database.ConnectDB()
	database.TunePool()

	// Ctrl+C menghentikan batch di antara dua peserta; yang sudah commit aman.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := repository.NewGormStore(database.DB)
	cache := templateService.NewTemplateCache(store)
	calc := scoringService.NewCalculator(store, cache)

	result, err := calc.RecalculateEvent(ctx, standardsService.OverrideContext{}, eventID, formationID)
	if err != nil {
		if result != nil {
			report(result)
		}
		log.Fatalf("❌ rekalkulasi berhenti: %v", err)
	}

	report(result)
	if result.Failed > 0 {
		os.Exit(1)
	}
}

func report(r *scoringService.BatchResult) {
	fmt.Printf("Total peserta : %d\n", r.Total)
	fmt.Printf("Berhasil      : %d\n", r.Succeeded)
	fmt.Printf("Gagal         : %d\n", r.Failed)
	for _, f := range r.Failures {
		fmt.Printf("  - %s: %s\n", f.ParticipantID, f.Error)
	}
}
