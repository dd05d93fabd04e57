package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logging"
	ucDoctor "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/doctor"
	ucPatient "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/patient"
)

var specialties = []string{
	"Dermatology",
	"Cardiology",
	"General Practice",
	"Orthopedics",
	"Endocrinology",
	"Neurology",
	"Pediatrics",
	"Psychiatry",
}

func main() {
	var doctors, patients int
	var password string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert fake doctors and patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(doctors, patients, password)
		},
	}
	cmd.Flags().IntVar(&doctors, "doctors", 10, "number of doctors")
	cmd.Flags().IntVar(&patients, "patients", 50, "number of patients")
	cmd.Flags().StringVar(&password, "password", "secret123", "password for every seeded account")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(doctors, patients int, password string) error {
	cfg := config.Load()
	logger := logging.New(cfg.Env, cfg.LogLevel)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	if err := dbpkg.Migrate(db); err != nil {
		return err
	}

	gofakeit.Seed(0)
	ctx := context.Background()

	saveDoctor := ucDoctor.NewSaveDoctor(infraRepo.NewDoctorGormRepository(db), nil)
	for i := 0; i < doctors; i++ {
		d, err := saveDoctor.Create(ctx, "seed", ucDoctor.SaveDoctorInput{
			Name:           "Dr. " + gofakeit.Name(),
			Specialty:      specialties[gofakeit.Number(0, len(specialties)-1)],
			Email:          fmt.Sprintf("doctor%d.%s", i+1, strings.ToLower(gofakeit.Email())),
			Password:       password,
			Phone:          gofakeit.Phone(),
			AvailableTimes: randomSlots(),
		})
		if err != nil {
			return fmt.Errorf("seed doctor %d: %w", i+1, err)
		}
		logger.Debug().Str("email", d.Email).Strs("slots", d.AvailableTimes).Msg("doctor seeded")
	}
	logger.Info().Int("count", doctors).Msg("doctors seeded")

	register := ucPatient.NewRegisterPatient(infraRepo.NewPatientGormRepository(db), nil, false)
	for i := 0; i < patients; i++ {
		_, err := register.Execute(ctx, ucPatient.RegisterPatientInput{
			Name:     gofakeit.Name(),
			Email:    fmt.Sprintf("patient%d.%s", i+1, gofakeit.Email()),
			Password: password,
			Phone:    fmt.Sprintf("55119%08d", i+1),
			Address:  gofakeit.Street() + ", " + gofakeit.City(),
		})
		if err != nil {
			return fmt.Errorf("seed patient %d: %w", i+1, err)
		}
	}
	logger.Info().Int("count", patients).Msg("patients seeded")

	return nil
}

// randomSlots picks a few one-hour slots between 08:00 and 18:00, in order.
func randomSlots() []string {
	var out []string
	for h := 8; h < 18; h++ {
		if gofakeit.Bool() {
			out = append(out, fmt.Sprintf("%02d:00-%02d:00", h, h+1))
		}
	}
	if len(out) == 0 {
		out = append(out, "09:00-10:00")
	}
	return out
}
