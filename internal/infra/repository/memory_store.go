package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/account"
	apdomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	doctordomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/doctor"
	patientdomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/patient"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/report"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type memoryState struct {
	// txMu serializes every write and every transaction, so a rollback never
	// discards somebody else's committed change.
	txMu sync.Mutex
	mu   sync.RWMutex

	admins       map[uint]models.Admin
	doctors      map[uint]models.Doctor
	patients     map[uint]models.Patient
	appointments map[uint]models.Appointment
	auditLogs    []models.AuditLog

	nextID uint
}

type memorySnapshot struct {
	admins       map[uint]models.Admin
	doctors      map[uint]models.Doctor
	patients     map[uint]models.Patient
	appointments map[uint]models.Appointment
	auditLogs    int
	nextID       uint
}

// MemoryStore keeps every table in process memory. It backs STORE=memory and
// the use case tests.
type MemoryStore struct {
	state *memoryState
	inTx  bool
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		state: &memoryState{
			admins:       map[uint]models.Admin{},
			doctors:      map[uint]models.Doctor{},
			patients:     map[uint]models.Patient{},
			appointments: map[uint]models.Appointment{},
		},
		now: time.Now,
	}
}

// write runs fn under the write lock, taking the transaction lock too unless
// the caller already holds it.
func (s *MemoryStore) write(fn func(st *memoryState) error) error {
	if !s.inTx {
		s.state.txMu.Lock()
		defer s.state.txMu.Unlock()
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return fn(s.state)
}

func (s *MemoryStore) read(fn func(st *memoryState) error) error {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	return fn(s.state)
}

func (st *memoryState) id() uint {
	st.nextID++
	return st.nextID
}

func (st *memoryState) snapshot() memorySnapshot {
	snap := memorySnapshot{
		admins:       make(map[uint]models.Admin, len(st.admins)),
		doctors:      make(map[uint]models.Doctor, len(st.doctors)),
		patients:     make(map[uint]models.Patient, len(st.patients)),
		appointments: make(map[uint]models.Appointment, len(st.appointments)),
		auditLogs:    len(st.auditLogs),
		nextID:       st.nextID,
	}
	for k, v := range st.admins {
		snap.admins[k] = v
	}
	for k, v := range st.doctors {
		snap.doctors[k] = v
	}
	for k, v := range st.patients {
		snap.patients[k] = v
	}
	for k, v := range st.appointments {
		snap.appointments[k] = v
	}
	return snap
}

func (st *memoryState) restore(snap memorySnapshot) {
	st.admins = snap.admins
	st.doctors = snap.doctors
	st.patients = snap.patients
	st.appointments = snap.appointments
	st.auditLogs = st.auditLogs[:snap.auditLogs]
	st.nextID = snap.nextID
}

func copyDoctor(d models.Doctor) *models.Doctor {
	d.AvailableTimes = append([]string(nil), d.AvailableTimes...)
	return &d
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (s *MemoryStore) Transaction(
	ctx context.Context,
	fn func(tx apdomain.Repository) error,
) error {
	if s.inTx {
		return fn(s)
	}

	s.state.txMu.Lock()
	defer s.state.txMu.Unlock()

	s.state.mu.RLock()
	snap := s.state.snapshot()
	s.state.mu.RUnlock()

	tx := &MemoryStore{state: s.state, inTx: true, now: s.now}
	if err := fn(tx); err != nil {
		s.state.mu.Lock()
		s.state.restore(snap)
		s.state.mu.Unlock()
		return err
	}
	return nil
}

// --------------------------------------------------
// Doctor
// --------------------------------------------------

func (s *MemoryStore) GetDoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	var out *models.Doctor
	err := s.read(func(st *memoryState) error {
		d, ok := st.doctors[id]
		if !ok {
			return domain.ErrNotFound
		}
		out = copyDoctor(d)
		return nil
	})
	return out, err
}

// LockDoctor is a plain read. Callers always hold txMu inside Transaction.
func (s *MemoryStore) LockDoctor(ctx context.Context, id uint) (*models.Doctor, error) {
	return s.GetDoctorByID(ctx, id)
}

func (s *MemoryStore) GetDoctorByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	var out *models.Doctor
	err := s.read(func(st *memoryState) error {
		for _, d := range st.doctors {
			if d.Email == email {
				out = copyDoctor(d)
				return nil
			}
		}
		return domain.ErrNotFound
	})
	return out, err
}

func (s *MemoryStore) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	var out []models.Doctor
	err := s.read(func(st *memoryState) error {
		out = make([]models.Doctor, 0, len(st.doctors))
		for _, d := range st.doctors {
			out = append(out, *copyDoctor(d))
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

func (s *MemoryStore) ListDoctorsByIDs(ctx context.Context, ids []uint) ([]models.Doctor, error) {
	out := make([]models.Doctor, 0, len(ids))
	err := s.read(func(st *memoryState) error {
		for _, id := range ids {
			if d, ok := st.doctors[id]; ok {
				out = append(out, *copyDoctor(d))
			}
		}
		return nil
	})
	return out, err
}

func (s *MemoryStore) CreateDoctor(ctx context.Context, d *models.Doctor) error {
	return s.write(func(st *memoryState) error {
		for _, existing := range st.doctors {
			if existing.Email == d.Email {
				return doctordomain.ErrDoctorExists
			}
		}
		now := s.now()
		d.ID = st.id()
		d.CreatedAt, d.UpdatedAt = now, now
		st.doctors[d.ID] = *copyDoctor(*d)
		return nil
	})
}

func (s *MemoryStore) UpdateDoctor(ctx context.Context, d *models.Doctor) error {
	return s.write(func(st *memoryState) error {
		if _, ok := st.doctors[d.ID]; !ok {
			return domain.ErrNotFound
		}
		for _, existing := range st.doctors {
			if existing.ID != d.ID && existing.Email == d.Email {
				return doctordomain.ErrDoctorExists
			}
		}
		d.UpdatedAt = s.now()
		st.doctors[d.ID] = *copyDoctor(*d)
		return nil
	})
}

func (s *MemoryStore) DeleteDoctor(ctx context.Context, id uint) error {
	return s.write(func(st *memoryState) error {
		if _, ok := st.doctors[id]; !ok {
			return domain.ErrNotFound
		}
		for apID, ap := range st.appointments {
			if ap.DoctorID == id {
				delete(st.appointments, apID)
			}
		}
		delete(st.doctors, id)
		return nil
	})
}

// --------------------------------------------------
// Patient
// --------------------------------------------------

func (s *MemoryStore) GetPatientByID(ctx context.Context, id uint) (*models.Patient, error) {
	var out *models.Patient
	err := s.read(func(st *memoryState) error {
		p, ok := st.patients[id]
		if !ok {
			return domain.ErrNotFound
		}
		out = &p
		return nil
	})
	return out, err
}

func (s *MemoryStore) GetPatientByEmail(ctx context.Context, email string) (*models.Patient, error) {
	var out *models.Patient
	err := s.read(func(st *memoryState) error {
		for _, p := range st.patients {
			if p.Email == email {
				p := p
				out = &p
				return nil
			}
		}
		return domain.ErrNotFound
	})
	return out, err
}

func (s *MemoryStore) ListPatientsByIDs(ctx context.Context, ids []uint) ([]models.Patient, error) {
	out := make([]models.Patient, 0, len(ids))
	err := s.read(func(st *memoryState) error {
		for _, id := range ids {
			if p, ok := st.patients[id]; ok {
				out = append(out, p)
			}
		}
		return nil
	})
	return out, err
}

func (s *MemoryStore) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	found := false
	err := s.read(func(st *memoryState) error {
		for _, p := range st.patients {
			if p.Email == email || (phone != "" && p.Phone == phone) {
				found = true
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (s *MemoryStore) CreatePatient(ctx context.Context, p *models.Patient) error {
	return s.write(func(st *memoryState) error {
		for _, existing := range st.patients {
			if existing.Email == p.Email || (p.Phone != "" && existing.Phone == p.Phone) {
				return patientdomain.ErrPatientExists
			}
		}
		now := s.now()
		p.ID = st.id()
		p.CreatedAt, p.UpdatedAt = now, now
		st.patients[p.ID] = *p
		return nil
	})
}

// --------------------------------------------------
// Admin
// --------------------------------------------------

func (s *MemoryStore) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var out *models.Admin
	err := s.read(func(st *memoryState) error {
		for _, a := range st.admins {
			if a.Username == username {
				a := a
				out = &a
				return nil
			}
		}
		return domain.ErrNotFound
	})
	return out, err
}

func (s *MemoryStore) CreateAdmin(ctx context.Context, a *models.Admin) error {
	return s.write(func(st *memoryState) error {
		a.ID = st.id()
		a.CreatedAt = s.now()
		st.admins[a.ID] = *a
		return nil
	})
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

func (st *memoryState) slotTaken(ap *models.Appointment) bool {
	for id, other := range st.appointments {
		if id != ap.ID && other.DoctorID == ap.DoctorID && other.AppointmentTime.Equal(ap.AppointmentTime) {
			return true
		}
	}
	return false
}

func (s *MemoryStore) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	var out *models.Appointment
	err := s.read(func(st *memoryState) error {
		ap, ok := st.appointments[id]
		if !ok {
			return domain.ErrNotFound
		}
		out = &ap
		return nil
	})
	return out, err
}

func (s *MemoryStore) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return s.write(func(st *memoryState) error {
		if st.slotTaken(ap) {
			return apdomain.ErrSlotUnavailable
		}
		now := s.now()
		ap.ID = st.id()
		ap.CreatedAt, ap.UpdatedAt = now, now
		st.appointments[ap.ID] = *ap
		return nil
	})
}

func (s *MemoryStore) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return s.write(func(st *memoryState) error {
		if _, ok := st.appointments[ap.ID]; !ok {
			return domain.ErrNotFound
		}
		if st.slotTaken(ap) {
			return apdomain.ErrSlotUnavailable
		}
		ap.UpdatedAt = s.now()
		st.appointments[ap.ID] = *ap
		return nil
	})
}

func (s *MemoryStore) UpdateAppointmentStatus(ctx context.Context, id uint, status apdomain.Status) error {
	return s.write(func(st *memoryState) error {
		ap, ok := st.appointments[id]
		if !ok {
			return domain.ErrNotFound
		}
		ap.Status = string(status)
		ap.UpdatedAt = s.now()
		st.appointments[id] = ap
		return nil
	})
}

func (s *MemoryStore) DeleteAppointment(ctx context.Context, id uint) error {
	return s.write(func(st *memoryState) error {
		if _, ok := st.appointments[id]; !ok {
			return domain.ErrNotFound
		}
		delete(st.appointments, id)
		return nil
	})
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (s *MemoryStore) listAppointments(match func(ap models.Appointment) bool) []models.Appointment {
	var out []models.Appointment
	_ = s.read(func(st *memoryState) error {
		out = make([]models.Appointment, 0)
		for _, ap := range st.appointments {
			if match(ap) {
				out = append(out, ap)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].AppointmentTime.Equal(out[j].AppointmentTime) {
			return out[i].ID < out[j].ID
		}
		return out[i].AppointmentTime.Before(out[j].AppointmentTime)
	})
	return out
}

func (s *MemoryStore) ListAppointmentsForDay(ctx context.Context, doctorID uint, start, end time.Time) ([]models.Appointment, error) {
	return s.listAppointments(func(ap models.Appointment) bool {
		return ap.DoctorID == doctorID &&
			!ap.AppointmentTime.Before(start) &&
			!ap.AppointmentTime.After(end)
	}), nil
}

func (s *MemoryStore) ListUpcoming(ctx context.Context, doctorID uint, from time.Time) ([]models.Appointment, error) {
	return s.listAppointments(func(ap models.Appointment) bool {
		return ap.DoctorID == doctorID && !ap.AppointmentTime.Before(from)
	}), nil
}

func (s *MemoryStore) ListByPatient(ctx context.Context, patientID uint, status apdomain.Status) ([]models.Appointment, error) {
	return s.listAppointments(func(ap models.Appointment) bool {
		return ap.PatientID == patientID && (status == "" || ap.Status == string(status))
	}), nil
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (s *MemoryStore) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	return s.write(func(st *memoryState) error {
		log.ID = st.id()
		log.CreatedAt = s.now()
		st.auditLogs = append(st.auditLogs, *log)
		return nil
	})
}

func (s *MemoryStore) ListAuditLogs(ctx context.Context, q audit.Query) ([]models.AuditLog, int64, error) {
	var matched []models.AuditLog
	_ = s.read(func(st *memoryState) error {
		for i := len(st.auditLogs) - 1; i >= 0; i-- {
			l := st.auditLogs[i]
			if q.Action != "" && l.Action != q.Action {
				continue
			}
			if q.Entity != "" && l.Entity != q.Entity {
				continue
			}
			if q.Actor != "" && l.Actor != q.Actor {
				continue
			}
			if q.From != nil && l.CreatedAt.Before(*q.From) {
				continue
			}
			if q.To != nil && !l.CreatedAt.Before(*q.To) {
				continue
			}
			matched = append(matched, l)
		}
		return nil
	})

	total := int64(len(matched))
	if q.Offset >= len(matched) {
		return []models.AuditLog{}, total, nil
	}
	matched = matched[q.Offset:]
	if q.Limit > 0 && q.Limit < len(matched) {
		matched = matched[:q.Limit]
	}
	return matched, total, nil
}

// --------------------------------------------------
// Reports
// --------------------------------------------------

func (s *MemoryStore) DailyAppointments(ctx context.Context, from, to time.Time) ([]report.DailyRow, error) {
	apps := s.listAppointments(func(ap models.Appointment) bool {
		return !ap.AppointmentTime.Before(from) && ap.AppointmentTime.Before(to)
	})

	out := make([]report.DailyRow, 0, len(apps))
	_ = s.read(func(st *memoryState) error {
		for _, ap := range apps {
			d, okD := st.doctors[ap.DoctorID]
			p, okP := st.patients[ap.PatientID]
			if !okD || !okP {
				continue
			}
			out = append(out, report.DailyRow{
				AppointmentID:   ap.ID,
				DoctorID:        d.ID,
				DoctorName:      d.Name,
				AppointmentTime: ap.AppointmentTime,
				Status:          ap.Status,
				PatientName:     p.Name,
				PatientPhone:    p.Phone,
			})
		}
		return nil
	})

	sort.SliceStable(out, func(i, j int) bool { return out[i].DoctorID < out[j].DoctorID })
	return out, nil
}

func (s *MemoryStore) PatientCountsByDoctor(ctx context.Context, from, to time.Time) ([]report.DoctorCount, error) {
	apps := s.listAppointments(func(ap models.Appointment) bool {
		return !ap.AppointmentTime.Before(from) && ap.AppointmentTime.Before(to)
	})

	seen := map[uint]map[uint]struct{}{}
	for _, ap := range apps {
		if seen[ap.DoctorID] == nil {
			seen[ap.DoctorID] = map[uint]struct{}{}
		}
		seen[ap.DoctorID][ap.PatientID] = struct{}{}
	}

	out := make([]report.DoctorCount, 0, len(seen))
	_ = s.read(func(st *memoryState) error {
		for doctorID, patients := range seen {
			d, ok := st.doctors[doctorID]
			if !ok {
				continue
			}
			out = append(out, report.DoctorCount{
				DoctorID:   d.ID,
				DoctorName: d.Name,
				Specialty:  d.Specialty,
				Patients:   int64(len(patients)),
			})
		}
		return nil
	})

	sort.Slice(out, func(i, j int) bool { return out[i].DoctorID < out[j].DoctorID })
	return out, nil
}

var (
	_ apdomain.Repository      = (*MemoryStore)(nil)
	_ doctordomain.Repository  = (*MemoryStore)(nil)
	_ patientdomain.Repository = (*MemoryStore)(nil)
	_ account.Repository       = (*MemoryStore)(nil)
	_ audit.Store              = (*MemoryStore)(nil)
	_ report.Repository        = (*MemoryStore)(nil)
)
