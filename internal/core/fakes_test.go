package core

import (
	"context"
	"sort"
	"sync"
	"time"

	"workforce.service/internal/core/model"
)

type fakeEmployeeRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]model.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{nextID: 1, rows: make(map[int64]model.Employee)}
}

func (r *fakeEmployeeRepo) Get(_ context.Context, id int64) (*model.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *fakeEmployeeRepo) FindByEmail(_ context.Context, email string) (*model.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.rows {
		if e.Email == email {
			e := e
			return &e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) FindByManager(_ context.Context, managerID int64) ([]model.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Employee
	for _, e := range r.rows {
		if e.ManagerID == managerID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *model.Employee) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	stored := *e
	stored.ID = id
	r.rows[id] = stored
	return id, nil
}

func (r *fakeEmployeeRepo) UpdateProfile(_ context.Context, e *model.Employee) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.rows[e.ID]
	if !ok {
		return false, nil
	}
	cur.Name = e.Name
	cur.Email = e.Email
	cur.BasicSalary = e.BasicSalary
	cur.DailyWage = e.DailyWage
	r.rows[e.ID] = cur
	return true, nil
}

func (r *fakeEmployeeRepo) UpdateStatus(_ context.Context, id int64, from, to model.ApprovalStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.rows[id]
	if !ok || cur.Status != from {
		return false, nil
	}
	cur.Status = to
	r.rows[id] = cur
	return true, nil
}

type fakeManagerRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]model.Manager
}

func newFakeManagerRepo() *fakeManagerRepo {
	return &fakeManagerRepo{nextID: 1, rows: make(map[int64]model.Manager)}
}

func (r *fakeManagerRepo) Get(_ context.Context, id int64) (*model.Manager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *fakeManagerRepo) FindByEmail(_ context.Context, email string) (*model.Manager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.rows {
		if m.Email == email {
			m := m
			return &m, nil
		}
	}
	return nil, nil
}

func (r *fakeManagerRepo) Create(_ context.Context, m *model.Manager) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	stored := *m
	stored.ID = id
	r.rows[id] = stored
	return id, nil
}

func (r *fakeManagerRepo) List(_ context.Context) ([]model.Manager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Manager
	for _, m := range r.rows {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeSuperAdminRepo struct {
	rows map[string]model.SuperAdmin
}

func newFakeSuperAdminRepo() *fakeSuperAdminRepo {
	return &fakeSuperAdminRepo{rows: make(map[string]model.SuperAdmin)}
}

func (r *fakeSuperAdminRepo) FindByEmail(_ context.Context, email string) (*model.SuperAdmin, error) {
	a, ok := r.rows[email]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

type fakeTaskRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]model.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{nextID: 1, rows: make(map[int64]model.Task)}
}

func (r *fakeTaskRepo) Get(_ context.Context, id int64) (*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *fakeTaskRepo) FindByEmployee(_ context.Context, employeeID int64) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Task
	for _, t := range r.rows {
		if t.EmployeeID == employeeID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTaskRepo) Create(_ context.Context, t *model.Task) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	stored := *t
	stored.ID = id
	r.rows[id] = stored
	return id, nil
}

func (r *fakeTaskRepo) UpdateStatus(_ context.Context, id int64, from, to model.TaskStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.rows[id]
	if !ok || cur.Status != from {
		return false, nil
	}
	cur.Status = to
	r.rows[id] = cur
	return true, nil
}

type fakeLeaveRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]model.LeaveRequest
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{nextID: 1, rows: make(map[int64]model.LeaveRequest)}
}

func (r *fakeLeaveRepo) Get(_ context.Context, id int64) (*model.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lr, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &lr, nil
}

func (r *fakeLeaveRepo) FindByEmployee(_ context.Context, employeeID int64) ([]model.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.LeaveRequest
	for _, lr := range r.rows {
		if lr.EmployeeID == employeeID {
			out = append(out, lr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeLeaveRepo) FindByStatus(_ context.Context, status model.LeaveStatus) ([]model.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.LeaveRequest
	for _, lr := range r.rows {
		if lr.Status == status {
			out = append(out, lr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeLeaveRepo) FindApprovedInRange(_ context.Context, employeeID int64, start, end time.Time) ([]model.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.LeaveRequest
	for _, lr := range r.rows {
		if lr.EmployeeID == employeeID && lr.Status == model.LeaveApproved &&
			!lr.StartDate.After(end) && !lr.EndDate.Before(start) {
			out = append(out, lr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeLeaveRepo) ExistsApprovedOverlap(ctx context.Context, employeeID int64, start, end time.Time) (bool, error) {
	matches, err := r.FindApprovedInRange(ctx, employeeID, start, end)
	if err != nil {
		return false, err
	}
	return len(matches) > 0, nil
}

func (r *fakeLeaveRepo) Create(_ context.Context, lr *model.LeaveRequest) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	stored := *lr
	stored.ID = id
	r.rows[id] = stored
	return id, nil
}

func (r *fakeLeaveRepo) UpdateStatus(_ context.Context, id int64, from, to model.LeaveStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.rows[id]
	if !ok || cur.Status != from {
		return false, nil
	}
	cur.Status = to
	r.rows[id] = cur
	return true, nil
}

type attendanceKey struct {
	employeeID int64
	date       string
}

type fakeAttendanceRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[attendanceKey]model.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{nextID: 1, rows: make(map[attendanceKey]model.Attendance)}
}

func (r *fakeAttendanceRepo) RecordsForRange(_ context.Context, employeeID int64, start, end time.Time) ([]model.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Attendance
	for _, a := range r.rows {
		if a.EmployeeID == employeeID && !a.Date.Before(start) && !a.Date.After(end) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *fakeAttendanceRepo) RecordForDate(_ context.Context, employeeID int64, date time.Time) (*model.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.rows[attendanceKey{employeeID, date.Format(time.DateOnly)}]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *fakeAttendanceRepo) Upsert(_ context.Context, a *model.Attendance) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := attendanceKey{a.EmployeeID, a.Date.Format(time.DateOnly)}
	if cur, ok := r.rows[key]; ok {
		cur.Status = a.Status
		r.rows[key] = cur
		return cur.ID, nil
	}
	id := r.nextID
	r.nextID++
	stored := *a
	stored.ID = id
	r.rows[key] = stored
	return id, nil
}

type fakeAnnouncementRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   []model.Announcement
}

func newFakeAnnouncementRepo() *fakeAnnouncementRepo {
	return &fakeAnnouncementRepo{nextID: 1}
}

func (r *fakeAnnouncementRepo) Create(_ context.Context, a *model.Announcement) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	stored := *a
	stored.ID = id
	r.rows = append(r.rows, stored)
	return id, nil
}

func (r *fakeAnnouncementRepo) List(_ context.Context) ([]model.Announcement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Announcement, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

// fakeProducer records published events instead of touching SQS.
type fakeProducer struct {
	mu            sync.Mutex
	notifications []any
	directorySync []any
	failPublish   bool
}

type errPublish struct{}

func (errPublish) Error() string { return "queue unavailable" }

func (p *fakeProducer) PublishNotification(_ context.Context, body interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failPublish {
		return errPublish{}
	}
	p.notifications = append(p.notifications, body)
	return nil
}

func (p *fakeProducer) PublishDirectorySync(_ context.Context, body interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failPublish {
		return errPublish{}
	}
	p.directorySync = append(p.directorySync, body)
	return nil
}
